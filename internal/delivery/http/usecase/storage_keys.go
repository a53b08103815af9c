package usecase

// Fixed record keys within a client's storage namespace.
const (
	keySessionUser   = "session:user"
	keyLanguage      = "prefs:language"
	keyNotifications = "prefs:notifications"
	keySeenQuestions = "quiz:seen"
)

func storageKey(clientID, record string) string {
	return clientID + "/" + record
}
