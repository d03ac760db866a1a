package usecase

import "time"

const (
	DefaultMembersFolder    = "Tasks"
	DefaultSelectionTimeout = 60 * time.Second

	reportFanout    = 8
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

// Workflow messages
const (
	msgSelectPrompt   = "Please select your folder by replying with the number corresponding to your name:\n"
	msgSubmitted      = "%s submitted a file at %s"
	msgSubmittedDM    = "Your task file \"%s\" has been submitted successfully, <@%s>!"
	msgProcessFailure = "Failed to process file \"%s\". Please try again."
)

// Log prefixes
const (
	logPrefixSubmit   = "internal.submission.usecase.Submit"
	logPrefixReport   = "internal.submission.usecase.Report"
	logPrefixOrganize = "internal.submission.usecase.Organize"
)
