package catalog

// QuestionBank is the full static quiz pool on Indian legal awareness.
var QuestionBank = []Question{
	{
		ID:           "q-fr-1",
		QuestionText: "Which article of the Indian Constitution guarantees the Right to Equality?",
		Options: []Option{
			{Text: "Article 14", IsCorrect: true},
			{Text: "Article 19"},
			{Text: "Article 21"},
			{Text: "Article 32"},
		},
		Category:    "Fundamental Rights",
		Difficulty:  DifficultyEasy,
		Explanation: "Article 14 guarantees equality before the law and equal protection of the laws to every person within the territory of India.",
	},
	{
		ID:           "q-fr-2",
		QuestionText: "The Right to Education makes schooling free and compulsory for children of which age group?",
		Options: []Option{
			{Text: "3 to 10 years"},
			{Text: "6 to 14 years", IsCorrect: true},
			{Text: "5 to 18 years"},
			{Text: "6 to 21 years"},
		},
		Category:    "Fundamental Rights",
		Difficulty:  DifficultyEasy,
		Explanation: "Article 21A, inserted by the 86th Amendment, makes free and compulsory education a right for children aged 6 to 14.",
	},
	{
		ID:           "q-fr-3",
		QuestionText: "Which article is known as the 'Right to Constitutional Remedies'?",
		Options: []Option{
			{Text: "Article 25"},
			{Text: "Article 29"},
			{Text: "Article 32", IsCorrect: true},
			{Text: "Article 44"},
		},
		Category:    "Fundamental Rights",
		Difficulty:  DifficultyMedium,
		Explanation: "Article 32 lets citizens move the Supreme Court directly to enforce fundamental rights. Dr. Ambedkar called it the heart and soul of the Constitution.",
	},
	{
		ID:           "q-fr-4",
		QuestionText: "The Right to Privacy was recognised as a fundamental right under which article?",
		Options: []Option{
			{Text: "Article 14"},
			{Text: "Article 19"},
			{Text: "Article 21", IsCorrect: true},
			{Text: "Article 23"},
		},
		Category:    "Fundamental Rights",
		Difficulty:  DifficultyHard,
		Explanation: "In Puttaswamy v. Union of India (2017), the Supreme Court held privacy to be intrinsic to life and personal liberty under Article 21.",
	},
	{
		ID:           "q-crim-1",
		QuestionText: "What is an FIR?",
		Options: []Option{
			{Text: "A court judgment"},
			{Text: "First Information Report registered by police", IsCorrect: true},
			{Text: "A bail application"},
			{Text: "A property registration document"},
		},
		Category:    "Criminal Law",
		Difficulty:  DifficultyEasy,
		Explanation: "An FIR is the first information of a cognizable offence recorded by the police. Registering it sets the criminal process in motion.",
	},
	{
		ID:           "q-crim-2",
		QuestionText: "Can the police refuse to register an FIR for a cognizable offence?",
		Options: []Option{
			{Text: "Yes, at their discretion"},
			{Text: "Yes, if the accused is influential"},
			{Text: "No, registration is mandatory", IsCorrect: true},
			{Text: "Only a magistrate can register one"},
		},
		Category:    "Criminal Law",
		Difficulty:  DifficultyMedium,
		Explanation: "Per Lalita Kumari v. State of UP, registration of an FIR is mandatory when information discloses a cognizable offence.",
	},
	{
		ID:           "q-crim-3",
		QuestionText: "Within how many hours must an arrested person be produced before a magistrate?",
		Options: []Option{
			{Text: "12 hours"},
			{Text: "24 hours", IsCorrect: true},
			{Text: "48 hours"},
			{Text: "72 hours"},
		},
		Category:    "Criminal Law",
		Difficulty:  DifficultyEasy,
		Explanation: "Article 22(2) and the criminal procedure code require production before the nearest magistrate within 24 hours of arrest, excluding travel time.",
	},
	{
		ID:           "q-crim-4",
		QuestionText: "A woman can be arrested by police only between which hours, barring exceptional circumstances?",
		Options: []Option{
			{Text: "Sunrise and sunset", IsCorrect: true},
			{Text: "9 AM and 9 PM"},
			{Text: "Any time with a warrant"},
			{Text: "There is no restriction"},
		},
		Category:    "Criminal Law",
		Difficulty:  DifficultyMedium,
		Explanation: "The procedure code bars arresting a woman after sunset and before sunrise except with prior permission of a magistrate.",
	},
	{
		ID:           "q-rti-1",
		QuestionText: "Under the RTI Act, within how many days must a public authority normally respond?",
		Options: []Option{
			{Text: "15 days"},
			{Text: "30 days", IsCorrect: true},
			{Text: "45 days"},
			{Text: "60 days"},
		},
		Category:    "Right to Information",
		Difficulty:  DifficultyEasy,
		Explanation: "Section 7 of the RTI Act, 2005 requires a response within 30 days, or 48 hours when life or liberty is involved.",
	},
	{
		ID:           "q-rti-2",
		QuestionText: "Who can file an RTI application?",
		Options: []Option{
			{Text: "Only lawyers"},
			{Text: "Only journalists"},
			{Text: "Any citizen of India", IsCorrect: true},
			{Text: "Only government employees"},
		},
		Category:    "Right to Information",
		Difficulty:  DifficultyEasy,
		Explanation: "Section 3 of the RTI Act gives every citizen the right to information held by public authorities.",
	},
	{
		ID:           "q-cons-1",
		QuestionText: "Under the Consumer Protection Act, 2019, what is the pecuniary limit of a District Commission?",
		Options: []Option{
			{Text: "Up to 50 lakh rupees", IsCorrect: true},
			{Text: "Up to 10 lakh rupees"},
			{Text: "Up to 5 crore rupees"},
			{Text: "No limit"},
		},
		Category:    "Consumer Rights",
		Difficulty:  DifficultyHard,
		Explanation: "After the 2021 revision, District Commissions hear complaints where the value of goods or services paid does not exceed 50 lakh rupees.",
	},
	{
		ID:           "q-cons-2",
		QuestionText: "Within what period from the cause of action should a consumer complaint ordinarily be filed?",
		Options: []Option{
			{Text: "6 months"},
			{Text: "1 year"},
			{Text: "2 years", IsCorrect: true},
			{Text: "5 years"},
		},
		Category:    "Consumer Rights",
		Difficulty:  DifficultyMedium,
		Explanation: "The limitation period for consumer complaints is two years, though a commission may condone delay for sufficient cause.",
	},
	{
		ID:           "q-lab-1",
		QuestionText: "What does the Minimum Wages Act regulate?",
		Options: []Option{
			{Text: "Maximum working hours only"},
			{Text: "The lowest wage payable for scheduled employment", IsCorrect: true},
			{Text: "Pension contributions"},
			{Text: "Trade union registration"},
		},
		Category:    "Labour Law",
		Difficulty:  DifficultyEasy,
		Explanation: "The Minimum Wages Act, 1948 empowers governments to fix minimum wage rates for scheduled employments so workers are not paid below them.",
	},
	{
		ID:           "q-lab-2",
		QuestionText: "The POSH Act, 2013 protects against harassment in which setting?",
		Options: []Option{
			{Text: "Public transport"},
			{Text: "Educational exams"},
			{Text: "The workplace", IsCorrect: true},
			{Text: "Online gaming"},
		},
		Category:    "Labour Law",
		Difficulty:  DifficultyEasy,
		Explanation: "The Sexual Harassment of Women at Workplace (Prevention, Prohibition and Redressal) Act, 2013 mandates Internal Committees at workplaces.",
	},
	{
		ID:           "q-fam-1",
		QuestionText: "What is the minimum legal age of marriage for men and women in India?",
		Options: []Option{
			{Text: "18 for both"},
			{Text: "21 for men, 18 for women", IsCorrect: true},
			{Text: "21 for both"},
			{Text: "25 for men, 21 for women"},
		},
		Category:    "Family Law",
		Difficulty:  DifficultyEasy,
		Explanation: "The Prohibition of Child Marriage Act, 2006 fixes the marriageable age at 21 for men and 18 for women.",
	},
	{
		ID:           "q-fam-2",
		QuestionText: "Under the Hindu Succession (Amendment) Act, 2005, daughters have what right in ancestral property?",
		Options: []Option{
			{Text: "No right"},
			{Text: "Right only until marriage"},
			{Text: "Equal coparcenary right with sons", IsCorrect: true},
			{Text: "Half the share of sons"},
		},
		Category:    "Family Law",
		Difficulty:  DifficultyMedium,
		Explanation: "The 2005 amendment made daughters coparceners by birth with rights equal to sons in ancestral property.",
	},
	{
		ID:           "q-cyb-1",
		QuestionText: "Which law primarily governs cyber crimes in India?",
		Options: []Option{
			{Text: "The Evidence Act"},
			{Text: "The Information Technology Act, 2000", IsCorrect: true},
			{Text: "The Telegraph Act"},
			{Text: "The Companies Act"},
		},
		Category:    "Cyber Law",
		Difficulty:  DifficultyEasy,
		Explanation: "The IT Act, 2000 is the primary statute for cyber offences such as hacking, identity theft and publishing obscene material online.",
	},
	{
		ID:           "q-cyb-2",
		QuestionText: "Identity theft and cheating by personation using a computer are punishable under which IT Act sections?",
		Options: []Option{
			{Text: "Sections 66C and 66D", IsCorrect: true},
			{Text: "Sections 43 and 44"},
			{Text: "Sections 79 and 80"},
			{Text: "Sections 2 and 3"},
		},
		Category:    "Cyber Law",
		Difficulty:  DifficultyHard,
		Explanation: "Section 66C punishes identity theft and Section 66D punishes cheating by personation using computer resources, each with up to three years imprisonment.",
	},
	{
		ID:           "q-aid-1",
		QuestionText: "Free legal aid to the poor is provided under which statute?",
		Options: []Option{
			{Text: "The Advocates Act, 1961"},
			{Text: "The Legal Services Authorities Act, 1987", IsCorrect: true},
			{Text: "The Court Fees Act, 1870"},
			{Text: "The Arbitration Act, 1996"},
		},
		Category:    "Legal Aid",
		Difficulty:  DifficultyMedium,
		Explanation: "The Legal Services Authorities Act, 1987 established NALSA and state authorities to give free legal services to eligible persons.",
	},
	{
		ID:           "q-aid-2",
		QuestionText: "Which constitutional article directs the State to provide free legal aid?",
		Options: []Option{
			{Text: "Article 39A", IsCorrect: true},
			{Text: "Article 51"},
			{Text: "Article 15"},
			{Text: "Article 45"},
		},
		Category:    "Legal Aid",
		Difficulty:  DifficultyHard,
		Explanation: "Article 39A, a directive principle, requires the State to secure equal justice and free legal aid so that opportunity for justice is not denied by economic disability.",
	},
}
