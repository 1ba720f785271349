package cmd

import (
	"fmt"
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagContactRole  string
	flagContactNotes string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "People on the project",
	RunE:  runContacts,
}

var contactsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a contact",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runContactsAdd,
}

func init() {
	contactsAddCmd.Flags().StringVar(&flagContactRole, "role", "", "What they do on the project")
	contactsAddCmd.Flags().StringVar(&flagContactNotes, "notes", "", "Free-form notes")

	contactsCmd.AddCommand(contactsAddCmd)
	rootCmd.AddCommand(contactsCmd)
}

func runContacts(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CONTACTS"))
	fmt.Println()

	if len(doc.Contacts) == 0 {
		fmt.Println("  No contacts yet. Add one with `trackdeck contacts add`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(doc.Contacts))
	for _, c := range doc.Contacts {
		rows = append(rows, []string{c.Name, c.Role, c.Notes})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Role", "Notes"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runContactsAdd(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("contact name is empty")
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	doc.Contacts = append(doc.Contacts, model.Contact{
		Name:  name,
		Role:  flagContactRole,
		Notes: flagContactNotes,
	})

	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("  Added %s\n", name)
	return nil
}
