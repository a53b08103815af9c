package catalog

// EmergencyContact is one static helpline entry.
type EmergencyContact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Notes  string `json:"notes,omitempty"`
}

// EmergencyContacts is the static helpline catalog.
var EmergencyContacts = []EmergencyContact{
	{ID: "ec-112", Name: "National Emergency Number", Number: "112", Notes: "Single number for police, fire and medical emergencies"},
	{ID: "ec-100", Name: "Police", Number: "100"},
	{ID: "ec-101", Name: "Fire", Number: "101"},
	{ID: "ec-102", Name: "Ambulance", Number: "102"},
	{ID: "ec-1091", Name: "Women Helpline", Number: "1091"},
	{ID: "ec-181", Name: "Women Helpline (Domestic Abuse)", Number: "181"},
	{ID: "ec-1098", Name: "Childline", Number: "1098", Notes: "For children in distress"},
	{ID: "ec-14567", Name: "Senior Citizen Helpline", Number: "14567"},
	{ID: "ec-1930", Name: "Cyber Crime Helpline", Number: "1930", Notes: "Report financial cyber fraud immediately"},
	{ID: "ec-15100", Name: "NALSA Legal Aid Helpline", Number: "15100", Notes: "Free legal aid and advice"},
}
