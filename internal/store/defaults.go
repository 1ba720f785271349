package store

import "github.com/kwesthuizen/trackdeck/internal/model"

func d(s string) model.Date {
	date, err := model.ParseDate(s)
	if err != nil {
		panic("store: bad seed date " + s)
	}
	return date
}

// Defaults returns the seeded starter document: one six-week website build
// with sample tasks, ledger entries, and contacts. Returned fresh on every
// call so callers can mutate it freely.
func Defaults() *model.Document {
	return &model.Document{
		Project: model.Project{
			Name:        "Meridian Jewellery Website",
			Client:      "Marina Oosthuizen",
			StartDate:   d("2024-12-02"),
			LaunchDate:  d("2025-01-12"),
			CurrentWeek: 1,
			Status:      model.ProjectInProgress,
		},
		Tasks: []model.Task{
			{ID: 1, Description: "Pay designer R5,000 deposit", Week: 1, Deadline: d("2024-12-02"), Status: model.TaskCompleted, Assignee: "You", Priority: model.PriorityCritical, LinkedPayment: "out-deposit-1"},
			{ID: 2, Description: "Send Pieter the project brief", Week: 1, Deadline: d("2024-12-04"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityHigh},
			{ID: 3, Description: "Confirm Wednesday kickoff call with Marina", Week: 1, Deadline: d("2024-12-03"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityHigh},
			{ID: 4, Description: "Book models for the product photoshoot", Week: 1, Deadline: d("2024-12-06"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityMedium},
			{ID: 5, Description: "Collect brand assets and logo files", Week: 1, Deadline: d("2024-12-06"), Status: model.TaskPending, Assignee: "Marina", Priority: model.PriorityMedium},
			{ID: 6, Description: "Review homepage wireframes", Week: 2, Deadline: d("2024-12-10"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityCritical},
			{ID: 7, Description: "Approve colour palette and typography", Week: 2, Deadline: d("2024-12-11"), Status: model.TaskPending, Assignee: "Marina", Priority: model.PriorityHigh},
			{ID: 8, Description: "Write copy for the About page", Week: 2, Deadline: d("2024-12-12"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityMedium},
			{ID: 9, Description: "Shortlist product photos from the shoot", Week: 2, Deadline: d("2024-12-13"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityMedium},
			{ID: 10, Description: "Send Marina the milestone 2 invoice", Week: 2, Deadline: d("2024-12-13"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityHigh, LinkedPayment: "in-milestone-2"},
			{ID: 11, Description: "Build the product catalogue pages", Week: 3, Deadline: d("2024-12-18"), Status: model.TaskPending, Assignee: "Pieter", Priority: model.PriorityCritical},
			{ID: 12, Description: "Set up the contact and enquiry form", Week: 3, Deadline: d("2024-12-19"), Status: model.TaskPending, Assignee: "Pieter", Priority: model.PriorityMedium},
			{ID: 13, Description: "Draft the ring care guide content", Week: 3, Deadline: d("2024-12-20"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityLow},
			{ID: 14, Description: "Pay designer second deposit", Week: 3, Deadline: d("2024-12-20"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityHigh, LinkedPayment: "out-deposit-2"},
			{ID: 15, Description: "Review mobile layout on real devices", Week: 4, Deadline: d("2024-12-27"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityHigh},
			{ID: 16, Description: "Load all product photos and prices", Week: 4, Deadline: d("2024-12-30"), Status: model.TaskPending, Assignee: "Pieter", Priority: model.PriorityCritical},
			{ID: 17, Description: "Proofread every page with Marina", Week: 4, Deadline: d("2024-12-31"), Status: model.TaskPending, Assignee: "Marina", Priority: model.PriorityMedium},
			{ID: 18, Description: "Connect the domain and SSL", Week: 5, Deadline: d("2025-01-03"), Status: model.TaskPending, Assignee: "Pieter", Priority: model.PriorityCritical},
			{ID: 19, Description: "Full checkout walkthrough test", Week: 5, Deadline: d("2025-01-06"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityHigh},
			{ID: 20, Description: "Prepare launch announcement for socials", Week: 5, Deadline: d("2025-01-08"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityMedium},
			{ID: 21, Description: "Final sign-off meeting with Marina", Week: 6, Deadline: d("2025-01-10"), Status: model.TaskPending, Assignee: "You", Priority: model.PriorityCritical},
			{ID: 22, Description: "Go live and monitor for launch issues", Week: 6, Deadline: d("2025-01-12"), Status: model.TaskPending, Assignee: "Pieter", Priority: model.PriorityCritical},
		},
		Finances: model.Finances{
			BudgetTotal: 50000,
			Received: []model.Payment{
				{ID: "in-deposit", Date: d("2024-11-25"), Amount: 11400, From: "Marina (50% preliminary)", Status: model.PaymentReceived},
			},
			PendingIn: []model.Payment{
				{ID: "in-milestone-2", Date: d("2024-12-16"), Amount: 19300, From: "Marina (Milestone 2)", Status: model.PaymentPending},
			},
			PaidOut: []model.Payment{
				{ID: "out-deposit-1", Date: d("2024-12-02"), Amount: 5000, To: "Pieter (Deposit 1)", Status: model.PaymentPaid},
			},
			PendingOut: []model.Payment{
				{ID: "out-deposit-2", Date: d("2024-12-20"), Amount: 5000, To: "Pieter (Deposit 2)", Status: model.PaymentPending},
			},
			DesignerTotal: 20000,
			ExpensesMisc:  3000,
		},
		Contacts: []model.Contact{
			{Name: "Marina Oosthuizen", Role: "Client", Notes: "Prefers WhatsApp. Weekly call on Wednesdays."},
			{Name: "Pieter van Wyk", Role: "Designer & developer", Notes: "Paid in two deposits of R5,000, balance on launch."},
			{Name: "Thandi Mokoena", Role: "Photographer", Notes: "Shoot booked for week 1. Delivers edited photos within 5 days."},
			{Name: "Johan Els", Role: "Hosting support", Notes: "Handles DNS and SSL for the meridian domain."},
		},
		Communications: []model.Communication{
			{
				Name:     "friday-update",
				Audience: "Marina",
				Body:     "Weekly progress summary sent every Friday afternoon.",
			},
			{
				Name:     "monday-checkin",
				Audience: "Pieter",
				Body:     "Monday morning check-in covering this week's build priorities.",
			},
		},
	}
}
