package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagTaskFilter   string
	flagTaskWeek     int
	flagTaskPriority string

	flagAddWeek     int
	flagAddDeadline string
	flagAddAssignee string
	flagAddPriority string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List and manage project tasks",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDone,
}

var tasksReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksReopen,
}

var tasksMoveCmd = &cobra.Command{
	Use:   "move <id> <up|down>",
	Short: "Move a task within its list",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksMove,
}

func init() {
	tasksCmd.Flags().StringVarP(&flagTaskFilter, "filter", "f", "all",
		"Filter: "+strings.Join(report.FilterKeys, ", "))
	tasksCmd.Flags().IntVarP(&flagTaskWeek, "week", "w", 0, "Only tasks for this week (0 = all)")
	tasksCmd.Flags().StringVarP(&flagTaskPriority, "priority", "p", "", "Only tasks with this priority")

	tasksAddCmd.Flags().IntVarP(&flagAddWeek, "week", "w", 0, "Week 1-6 (default: current week)")
	tasksAddCmd.Flags().StringVar(&flagAddDeadline, "deadline", "", "Deadline YYYY-MM-DD (default: end of week)")
	tasksAddCmd.Flags().StringVar(&flagAddAssignee, "assignee", "You", "Who owns the task")
	tasksAddCmd.Flags().StringVar(&flagAddPriority, "priority", "medium", "low, medium, high, or critical")

	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	tasksCmd.AddCommand(tasksReopenCmd)
	tasksCmd.AddCommand(tasksMoveCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	now := time.Now()
	filter := report.Filter{
		Key:      flagTaskFilter,
		Week:     flagTaskWeek,
		Priority: model.Priority(flagTaskPriority),
	}
	tasks := report.FilterTasks(doc.Tasks, filter, now)
	tasks = report.PriorityOrder(tasks, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TASKS  %s", strings.ToUpper(flagTaskFilter))))
	fmt.Println()

	if len(tasks) == 0 {
		fmt.Println("  No tasks match. Add one with `trackdeck tasks add`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := cli.FormatDue(t.Deadline, now)
		if t.Status == model.TaskCompleted {
			due = "done"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", cli.StatusGlyph(t.Status), t.ID),
			t.Description,
			fmt.Sprintf("W%d", t.Week),
			strings.TrimSpace(cli.PriorityLabel(t.Priority)),
			t.Assignee,
			due,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Task", "Week", "Priority", "Who", "Due"},
		Rows:    rows,
	}))

	stats := report.TaskStats(doc.Tasks, now)
	fmt.Printf("\n  %d done, %d open, %d overdue\n\n", stats.Completed, stats.Pending, stats.Overdue)

	return nil
}

func runTasksAdd(_ *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	description := strings.Join(args, " ")

	week := flagAddWeek
	if week == 0 {
		week = doc.Project.CurrentWeek
	}

	deadline, err := resolveDeadline(doc, week)
	if err != nil {
		return err
	}

	task, err := doc.AddTask(description, week, deadline, flagAddAssignee, model.Priority(flagAddPriority))
	if err != nil {
		return err
	}

	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("  Added task %d: %s (week %d, due %s)\n", task.ID, task.Description, task.Week, task.Deadline)

	// Suggest likely follow-up tasks based on what was just typed.
	if suggestions := report.Suggest(description, doc.Tasks); len(suggestions) > 0 {
		fmt.Println("\n  You might also want to:")
		for _, s := range suggestions {
			fmt.Printf("    - %s\n", s)
		}
	}

	return nil
}

// resolveDeadline uses the --deadline flag when given, otherwise the end of
// the chosen week counted from the project start.
func resolveDeadline(doc *model.Document, week int) (model.Date, error) {
	if flagAddDeadline != "" {
		d, err := model.ParseDate(flagAddDeadline)
		if err != nil {
			return model.Date{}, fmt.Errorf("bad --deadline: %w", err)
		}
		return d, nil
	}
	if doc.Project.StartDate.IsZero() {
		return model.DateOf(time.Now().AddDate(0, 0, 7)), nil
	}
	return model.DateOf(doc.Project.StartDate.AddDate(0, 0, week*7-1)), nil
}

func runTasksDone(_ *cobra.Command, args []string) error {
	return setTaskStatus(args[0], true)
}

func runTasksReopen(_ *cobra.Command, args []string) error {
	return setTaskStatus(args[0], false)
}

func setTaskStatus(idArg string, done bool) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("task id must be a number, got %q", idArg)
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	if done {
		err = doc.CompleteTask(id)
	} else {
		err = doc.ReopenTask(id)
	}
	if err != nil {
		return err
	}

	if err := saveDocument(doc); err != nil {
		return err
	}

	t := doc.FindTask(id)
	if done {
		fmt.Printf("  Done: %s\n", t.Description)
		stats := report.TaskStats(doc.Tasks, time.Now())
		fmt.Printf("  Progress: %s\n", cli.RenderProgressBar(stats.Progress(), 30))
	} else {
		fmt.Printf("  Reopened: %s\n", t.Description)
	}
	return nil
}

func runTasksMove(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("task id must be a number, got %q", args[0])
	}

	var delta int
	switch args[1] {
	case "up":
		delta = -1
	case "down":
		delta = 1
	default:
		return fmt.Errorf("direction must be up or down, got %q", args[1])
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	if err := doc.MoveTask(id, delta); err != nil {
		return err
	}
	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("  Moved task %d %s\n", id, args[1])
	return nil
}
