package discord

const (
	msgNoNames         = "No names found in the database."
	msgFetchFailed     = "An error occurred while fetching the names."
	msgSelectUsage     = "Usage: `!select <number> <points>`"
	msgSelectNotNumber = "Please provide valid numbers for both the selection and points."
	msgSelectInvalid   = "Invalid selection. Please choose a valid number from the list."
	msgNegativePoints  = "Points cannot go below zero."
	msgPointsRange     = "Points must be between -%d and %d."
	msgUpdateFailed    = "An error occurred while updating the points."
	msgUpdated         = "Successfully updated points for '%s' to %d."
	msgPointsSent      = "Points list sent to you via DM."
	msgPointsDMFailed  = "Failed to send the points list. Please check your DM settings."
)
