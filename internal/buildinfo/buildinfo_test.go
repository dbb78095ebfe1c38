package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	orig := buildVersion
	t.Cleanup(func() { buildVersion = orig })

	buildVersion = "v1.2.0"
	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Contains(t, buf.String(), "Build version: v1.2.0\n")
	assert.Contains(t, buf.String(), "Build commit: "+valueOrNA(buildCommit)+"\n")
	assert.Equal(t, "N/A", valueOrNA(""))
}
