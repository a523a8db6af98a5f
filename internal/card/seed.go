package card

// SeedCategories returns the categories a fresh installation starts with.
func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Arrays"},
		{ID: "2", Name: "Strings"},
		{ID: "3", Name: "Graphs"},
		{ID: "4", Name: "Trees"},
	}
}

// SeedFlashcards returns the flashcards a fresh installation starts with.
// They reference the seed category ids.
func SeedFlashcards() []Flashcard {
	return []Flashcard{
		{ID: "f1", CategoryID: "1", Question: "What is an array?", Answer: "A collection of elements identified by index or key."},
		{ID: "f2", CategoryID: "1", Question: "What is the index of the first element in an array?", Answer: "0"},
		{ID: "f3", CategoryID: "2", Question: "What is a string?", Answer: "A sequence of characters."},
		{ID: "f4", CategoryID: "2", Question: "How do you concatenate two strings?", Answer: "Using the + operator or concat() function."},
	}
}
