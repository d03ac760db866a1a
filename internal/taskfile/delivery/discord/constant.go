package discord

const (
	msgNoTaskFile      = "No files found in the \"%s\" folder."
	msgTaskSent        = "Task file sent to your DM!"
	msgTaskDMFailed    = "Failed to send the task. Please make sure your DMs are open."
	msgTaskFetchFailed = "Failed to download the task. Please try again later."
	msgAttachTask      = "Please attach a file to upload as the new task."
	msgTaskUploaded    = "New task file **%s** uploaded successfully!"
	msgTaskUploadFail  = "Failed to upload the task. Please try again."
	msgOldFilesRemain  = "New task uploaded, but some old files could not be removed."
	msgNewTaskNotice   = "@everyone New task has been added!"
)
