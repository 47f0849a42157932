package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Save prompts for a search query, stores it in the current user's saved
// list and prints the generated id.
func (a *App) Save(ctx context.Context) error {
	cur := a.sessions.Current()
	if cur == nil {
		return nil
	}

	query, err := getSimpleText(a.reader, "Enter search query to save", os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.savedStore.Save(ctx, cur.User.Email, map[string]any{"q": query})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Saved as %s\n", id)
	return nil
}

// List prints the current user's saved items, newest first.
func (a *App) List(ctx context.Context) error {
	cur := a.sessions.Current()
	if cur == nil {
		return nil
	}

	items, err := a.savedStore.List(ctx, cur.User.Email)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	if len(items) == 0 {
		fmt.Println("Nothing saved yet")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%s  %s  %v\n", item.ID, item.CreatedAt.Format("2006-01-02 15:04:05"), item.Fields)
	}
	return nil
}

// Delete prompts for an item id and removes it from the current user's list.
// Deleting an id that is already gone is not an error.
func (a *App) Delete(ctx context.Context) error {
	cur := a.sessions.Current()
	if cur == nil {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter item id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.savedStore.Delete(ctx, cur.User.Email, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}
