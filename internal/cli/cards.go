package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/attachment"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/repository"
)

func cardsCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage flashcards",
	}

	var categoryID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards (active category by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			catID := categoryID
			if catID == "" {
				catID = repo.ActiveCategory()
			}
			cards := repo.ListByCategory(catID)
			if len(cards) == 0 {
				fmt.Println("No flashcards in this category yet. Run sync or add one manually!")
				return nil
			}
			for _, f := range cards {
				fmt.Printf("%s\n  Q: %s\n", f.ID, f.Question)
				if repo.Revealed(f.ID) {
					fmt.Printf("  A: %s\n", f.Answer)
				} else {
					fmt.Println("  A: (flip to reveal)")
				}
				if f.HasAttachment() {
					fmt.Println("  [has attachment]")
				}
			}
			return nil
		},
	}
	listCmd.Flags().StringVarP(&categoryID, "category", "c", "", "Category id (default: active)")
	cmd.AddCommand(listCmd)

	var question, answer, imagePath, pdfPath string
	newCardFlags := func(c *cobra.Command) {
		c.Flags().StringVarP(&categoryID, "category", "c", "", "Category id")
		c.Flags().StringVarP(&question, "question", "q", "", "Question text")
		c.Flags().StringVarP(&answer, "answer", "a", "", "Answer text")
		c.Flags().StringVar(&imagePath, "image", "", "Image file to embed in the answer")
		c.Flags().StringVar(&pdfPath, "pdf", "", "PDF file to embed in the answer")
	}

	buildCard := func() (repository.NewCard, error) {
		nc := repository.NewCard{CategoryID: categoryID, Question: question, Answer: answer}
		if imagePath != "" {
			data, err := attachment.EncodeFile(imagePath, attachment.KindImage)
			if err != nil {
				return nc, err
			}
			nc.Image = data
		}
		if pdfPath != "" {
			data, err := attachment.EncodeFile(pdfPath, attachment.KindPDF)
			if err != nil {
				return nc, err
			}
			nc.PDF = data
		}
		return nc, nil
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a flashcard",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			nc, err := buildCard()
			if err != nil {
				return err
			}
			f, err := repo.AddFlashcard(nc)
			if err != nil {
				return err
			}
			fmt.Printf("Added flashcard %s\n", f.ID)
			return nil
		},
	}
	newCardFlags(addCmd)
	cmd.AddCommand(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Replace a flashcard's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			nc, err := buildCard()
			if err != nil {
				return err
			}
			if err := repo.UpdateFlashcard(args[0], nc); err != nil {
				return err
			}
			fmt.Println("Updated.")
			return nil
		},
	}
	newCardFlags(editCmd)
	cmd.AddCommand(editCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if !confirm("Delete this flashcard?", flags.AssumeYes) {
				fmt.Println("Aborted.")
				return nil
			}
			if err := repo.DeleteFlashcard(args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "flip [id]",
		Short: "Flip a flashcard and show its answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if repo.ToggleReveal(args[0]) {
				for _, f := range repo.Flashcards() {
					if f.ID == args[0] {
						fmt.Println(f.Answer)
						return nil
					}
				}
				return fmt.Errorf("flashcard %s not found", args[0])
			}
			fmt.Println("Hidden.")
			return nil
		},
	})

	return cmd
}
