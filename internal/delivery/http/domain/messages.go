package domain

var (
	AUTH_REGISTER_SUCCESS = "Account created"
	AUTH_REGISTER_FAILED  = "Failed to create account"
	AUTH_LOGIN_SUCCESS    = "Logged in"
	AUTH_LOGIN_FAILED     = "Failed to log in"
	AUTH_LOGOUT_SUCCESS   = "Logged out"
	AUTH_LOGOUT_FAILED    = "Failed to log out"
	AUTH_SESSION_SUCCESS  = "Session state"

	PREFERENCE_GET_SUCCESS    = "Preferences"
	PREFERENCE_UPDATE_SUCCESS = "Preferences updated"
	PREFERENCE_UPDATE_FAILED  = "Failed to update preferences"
	TRANSLATION_SUCCESS       = "Translation"

	QUIZ_START_SUCCESS   = "Quiz started"
	QUIZ_START_FAILED    = "Failed to start quiz"
	QUIZ_SELECT_SUCCESS  = "Answer selected"
	QUIZ_SELECT_FAILED   = "Failed to select answer"
	QUIZ_SUBMIT_SUCCESS  = "Answer submitted"
	QUIZ_SUBMIT_FAILED   = "Failed to submit answer"
	QUIZ_NEXT_SUCCESS    = "Advanced to next question"
	QUIZ_NEXT_FAILED     = "Failed to advance"
	QUIZ_STATE_SUCCESS   = "Quiz state"
	QUIZ_STATE_FAILED    = "Failed to get quiz state"
	QUIZ_EXPLAIN_SUCCESS = "Explanation"
	QUIZ_EXPLAIN_FAILED  = "Failed to get explanation"

	CONTENT_LAWS_SUCCESS     = "Laws"
	CONTENT_LAW_FAILED       = "Failed to get law"
	CONTENT_CONTACTS_SUCCESS = "Emergency contacts"
)
