package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addTaskValues collects the add-task form fields.
type addTaskValues struct {
	description string
	week        string
	deadline    string
	assignee    string
	priority    string
}

func (a App) startAddForm() (tea.Model, tea.Cmd) {
	if a.doc == nil {
		return a, nil
	}

	a.addVals = addTaskValues{
		week:     strconv.Itoa(a.doc.Project.CurrentWeek),
		assignee: "You",
		priority: string(model.PriorityMedium),
	}

	weekOptions := make([]huh.Option[string], 0, model.TotalWeeks)
	for w := 1; w <= model.TotalWeeks; w++ {
		weekOptions = append(weekOptions, huh.NewOption(fmt.Sprintf("Week %d", w), strconv.Itoa(w)))
	}

	tasks := a.doc.Tasks
	a.addForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What needs doing?").
				Value(&a.addVals.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("describe the task")
					}
					return nil
				}).
				SuggestionsFunc(func() []string {
					return report.Suggest(a.addVals.description, tasks)
				}, &a.addVals.description),
			huh.NewSelect[string]().
				Title("Week").
				Options(weekOptions...).
				Value(&a.addVals.week),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("blank for end of week").
				Value(&a.addVals.deadline).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := model.ParseDate(s)
					return err
				}),
			huh.NewInput().
				Title("Assignee").
				Value(&a.addVals.assignee),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(model.PriorityLow)),
					huh.NewOption("Medium", string(model.PriorityMedium)),
					huh.NewOption("High", string(model.PriorityHigh)),
					huh.NewOption("Critical", string(model.PriorityCritical)),
				).
				Value(&a.addVals.priority),
		),
	)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(a.width).WithHeight(a.height)
	}
	a.adding = true
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		a.submitAddForm()
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	if a.addForm.State == huh.StateAborted {
		a.adding = false
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) submitAddForm() {
	week, err := strconv.Atoi(a.addVals.week)
	if err != nil {
		week = a.doc.Project.CurrentWeek
	}

	var deadline model.Date
	if a.addVals.deadline != "" {
		deadline, _ = model.ParseDate(a.addVals.deadline)
	}
	if deadline.IsZero() {
		if a.doc.Project.StartDate.IsZero() {
			deadline = model.DateOf(time.Now().AddDate(0, 0, 7))
		} else {
			deadline = model.DateOf(a.doc.Project.StartDate.AddDate(0, 0, week*7-1))
		}
	}

	_, err = a.doc.AddTask(a.addVals.description, week, deadline, a.addVals.assignee, model.Priority(a.addVals.priority))
	if err != nil {
		a.saveErr = err
		return
	}
	a.save()
}
