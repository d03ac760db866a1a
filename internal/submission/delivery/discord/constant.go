package discord

const (
	msgNoAttachments     = "Please attach at least one file with your task."
	msgNoMemberFolders   = "No member folders found in the \"%s\" folder."
	msgSelectionTimeout  = "Selection timed out. Please run !submit again."
	msgInvalidSelection  = "Invalid selection. Please provide a valid number next time."
	msgAlreadyPending    = "You already have a pending selection in this channel."
	msgSubmitFailed      = "An error occurred while processing your submission. Please try again."
	msgOrganizeUsage     = "Please specify a subfolder name. Usage: `!organize <subfolder-name>`"
	msgOrganized         = "Files have been organized into new subfolders named \"%s\"."
	msgNothingToOrganize = "No files found in any folder. No subfolders were created."
	msgOrganizeFailed    = "Failed to organize files. Please check the logs for details."
	msgCountUsage        = "Please provide a valid task number. Usage: `!count <taskNumber>`"
	msgNoSubmissions     = "No submissions found for task %d."
	msgReportSent        = "Report sent to you via DM."
	msgReportDMFailed    = "Failed to send report. Please check your DM settings."
	msgReportFailed      = "An error occurred while generating the report."
)
