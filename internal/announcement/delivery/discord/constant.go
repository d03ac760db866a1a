package discord

const (
	msgEmptyAnnouncement = "Please provide a message to send."
	msgAnnounceFailed    = "Failed to send the notification. Please try again."
	msgPurged            = "All task confirmation messages have been deleted."
	msgPurgeFailed       = "An error occurred while trying to delete the messages."
)
