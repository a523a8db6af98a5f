package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func categoriesCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage flashcard categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			active := repo.ActiveCategory()
			for _, c := range repo.Categories() {
				marker := " "
				if c.ID == active {
					marker = "*"
				}
				fmt.Printf("%s %-36s  %s (%d cards)\n", marker, c.ID, c.Name, len(repo.ListByCategory(c.ID)))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Create a category and make it active",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			c, err := repo.AddCategory(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("Created category %q (%s)\n", c.Name, c.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename [id] [new name]",
		Short: "Rename a category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := repo.RenameCategory(args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Println("Renamed.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a category and all its flashcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			n := len(repo.ListByCategory(args[0]))
			if !confirm(fmt.Sprintf("Delete this category and its %d flashcards?", n), flags.AssumeYes) {
				fmt.Println("Aborted.")
				return nil
			}
			if err := repo.DeleteCategory(args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	})

	return cmd
}
