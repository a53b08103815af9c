package catalog

// Law is one static legal-awareness article shown on the laws screen.
type Law struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// Laws is the static law catalog.
var Laws = []Law{
	{
		ID:       "law-equality",
		Title:    "Right to Equality (Articles 14-18)",
		Category: "Fundamental Rights",
		Summary:  "Every person is equal before the law. The State cannot discriminate on grounds of religion, race, caste, sex or place of birth, and untouchability is abolished.",
	},
	{
		ID:       "law-freedom",
		Title:    "Right to Freedom (Articles 19-22)",
		Category: "Fundamental Rights",
		Summary:  "Citizens enjoy freedom of speech and expression, assembly, association, movement, residence and profession, along with protections in arrest and detention.",
	},
	{
		ID:       "law-education",
		Title:    "Right to Education (Article 21A)",
		Category: "Fundamental Rights",
		Summary:  "Children between 6 and 14 years are entitled to free and compulsory education. Schools cannot deny admission for lack of documents or charge capitation fees.",
	},
	{
		ID:       "law-rti",
		Title:    "Right to Information Act, 2005",
		Category: "Transparency",
		Summary:  "Any citizen may request information from a public authority, which must reply within 30 days. Information concerning life and liberty must be given within 48 hours.",
	},
	{
		ID:       "law-consumer",
		Title:    "Consumer Protection Act, 2019",
		Category: "Consumer Rights",
		Summary:  "Consumers can complain about defective goods, deficient services and unfair trade practices before District, State and National Commissions, including by e-filing.",
	},
	{
		ID:       "law-posh",
		Title:    "POSH Act, 2013",
		Category: "Workplace",
		Summary:  "Every workplace with ten or more employees must constitute an Internal Committee to receive and redress complaints of sexual harassment in a time-bound manner.",
	},
	{
		ID:       "law-dv",
		Title:    "Protection of Women from Domestic Violence Act, 2005",
		Category: "Family",
		Summary:  "Women facing physical, emotional, sexual or economic abuse at home can seek protection orders, residence orders and monetary relief from a magistrate.",
	},
	{
		ID:       "law-it",
		Title:    "Information Technology Act, 2000",
		Category: "Cyber",
		Summary:  "Hacking, identity theft, phishing and publishing private images without consent are punishable offences. Victims can report at the national cybercrime portal.",
	},
	{
		ID:       "law-legal-aid",
		Title:    "Legal Services Authorities Act, 1987",
		Category: "Access to Justice",
		Summary:  "Women, children, persons with disability, industrial workmen, persons in custody and those below the income ceiling are entitled to free legal services from legal services authorities.",
	},
}

// LawByID returns the law with the given id.
func LawByID(id string) (Law, bool) {
	for _, l := range Laws {
		if l.ID == id {
			return l, true
		}
	}
	return Law{}, false
}
