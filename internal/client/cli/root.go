package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	cur := a.sessions.Current()
	if cur == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", cur.User.Email, a.mode())
}

// Root restores any persisted session and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	if err := a.sessions.Restore(ctx); err != nil {
		log.Printf("session restore failed: %s", err.Error())
	}
	if cur := a.sessions.Current(); cur != nil {
		log.Printf("Welcome back, %s", cur.User.Email)
	}

	log.Println("Welcome to Clio CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
