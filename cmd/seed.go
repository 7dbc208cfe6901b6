package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhall/internal/store"
)

var seedLessons = []struct {
	title   string
	content string
}{
	{
		title:   "Introduction to AI",
		content: "Artificial intelligence is the study of systems that perform tasks normally requiring human intelligence. This lesson covers the history of the field, the difference between narrow and general AI, and the main problem areas: search, knowledge representation, learning, and perception. AI systems today are narrow: each solves one class of problem well, such as recognizing speech or ranking search results, without any broader understanding.",
	},
	{
		title:   "Machine Learning Fundamentals",
		content: "Machine learning builds models that improve at a task through exposure to data rather than explicit programming. This lesson introduces supervised learning (learning a mapping from labeled examples), unsupervised learning (finding structure in unlabeled data), and the train/validation/test split. It explains overfitting: a model that memorizes its training data performs poorly on new data, which is why evaluation always happens on data the model has never seen.",
	},
	{
		title:   "Deep Learning Overview",
		content: "A neural network is a layered model of connected units, each computing a weighted sum of its inputs followed by a nonlinear activation. Deep learning stacks many such layers so that early layers learn simple features and later layers compose them into abstractions. This lesson walks through feedforward networks, the role of backpropagation in training, and why large datasets and parallel hardware made deep networks practical.",
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample lessons and users",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		existing, err := s.LessonRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		if len(existing) > 0 {
			fmt.Printf("Database already has %d lessons, skipping seed.\n", len(existing))
			return nil
		}

		for _, l := range seedLessons {
			lesson, err := s.LessonRepo().Create(ctx, l.title, l.content)
			if err != nil {
				return fmt.Errorf("seed lesson %q: %w", l.title, err)
			}
			fmt.Printf("Created lesson %d: %s\n", lesson.ID, lesson.Title)
		}

		admin, err := s.UserRepo().Create(ctx, "Demo Admin", store.RoleAdmin)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		fmt.Printf("Created user %d: %s (admin)\n", admin.ID, admin.Name)

		student, err := s.UserRepo().Create(ctx, "Demo Student", store.RoleStudent)
		if err != nil {
			return fmt.Errorf("seed student: %w", err)
		}
		fmt.Printf("Created user %d: %s (student)\n", student.ID, student.Name)

		return nil
	},
}
