package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

const helpText = `Session:
  login                     sign in with an API token
  logout                    forget the stored token
  stats                     dashboard counters for the from/to range
Screens:
  screens                   list screens
  screen <name>             open and load a screen
  from <YYYY-MM-DD|->       set or clear the start date
  to <YYYY-MM-DD|->         set or clear the end date
  category <id|->           category filter (requests)
  referral <code|->         referral code filter (geeks-referral)
  load | search             fetch with the current filters
  find <text>               filter loaded rows; no text clears
  page <n>                  go to page n
  size <n>                  rows per page
  show                      print the current page
Records:
  add [name=value ...]      create a record; prompts when no fields given
  edit <id> [name=value ...]
  delete <id>               ask to delete; then confirm or cancel
  confirm | cancel
  upload <id|-> <file ...>  upload images; - when not tied to a record
  export                    save the filtered rows as CSV
Other:
  help | exit | quit`

// runREPL reads and executes commands until exit or EOF. Ctrl-C only
// discards the current line.
func runREPL(ctx context.Context, a *App) {
	for {
		a.in.SetPrompt(a.prompt())
		line, err := a.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(a.out, "Use 'exit' or 'quit' to leave.")
			continue
		}
		if err != nil {
			return
		}

		args := parseArgs(line)
		if len(args) == 0 {
			continue
		}
		if a.exec(ctx, args[0], args[1:]) {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
	}
}

// exec runs one command and reports whether the console should quit.
func (a *App) exec(ctx context.Context, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		fmt.Fprintln(a.out, helpText)
	case "exit", "quit":
		return true

	case "login":
		err = a.Login(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "stats":
		err = a.Stats(ctx)

	case "screens":
		a.listScreens()
	case "screen":
		err = a.openScreen(ctx, args)
	case "from", "to":
		err = a.setDate(cmd, args)
	case "category":
		err = a.setFilter(args, func(f *models.FilterState, v string) { f.CategoryID = v })
	case "referral":
		err = a.setFilter(args, func(f *models.FilterState, v string) { f.ReferralCode = v })
	case "load", "search":
		err = a.load(ctx)
	case "find":
		err = a.find(args)
	case "page":
		err = a.page(ctx, args)
	case "size":
		err = a.size(ctx, args)
	case "show":
		err = a.show()

	case "add":
		err = a.add(ctx, args)
	case "edit":
		err = a.edit(ctx, args)
	case "delete":
		err = a.requestDelete(args)
	case "confirm":
		err = a.confirmDelete(ctx)
	case "cancel":
		err = a.cancelDelete()
	case "upload":
		err = a.upload(ctx, args)
	case "export":
		err = a.export(ctx)

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}

	if err != nil {
		a.report(ctx, err)
	}
	return false
}
