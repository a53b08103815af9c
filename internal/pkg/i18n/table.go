package i18n

// translations is the static translation table. It is never mutated at
// runtime. Every key should carry all three languages; missing entries
// resolve through the caller fallback in Translate.
var translations = map[string]map[Language]string{
	"app.name": {
		LanguageEnglish: "Nyaya Sathi",
		LanguageHindi:   "न्याय साथी",
		LanguageTamil:   "நீதி தோழன்",
	},
	"app.tagline": {
		LanguageEnglish: "Know your rights, know the law",
		LanguageHindi:   "अपने अधिकार जानें, कानून जानें",
		LanguageTamil:   "உங்கள் உரிமைகளை அறியுங்கள், சட்டத்தை அறியுங்கள்",
	},
	"nav.home": {
		LanguageEnglish: "Home",
		LanguageHindi:   "होम",
		LanguageTamil:   "முகப்பு",
	},
	"nav.laws": {
		LanguageEnglish: "Laws",
		LanguageHindi:   "कानून",
		LanguageTamil:   "சட்டங்கள்",
	},
	"nav.quiz": {
		LanguageEnglish: "Quiz",
		LanguageHindi:   "प्रश्नोत्तरी",
		LanguageTamil:   "வினாடி வினா",
	},
	"nav.contacts": {
		LanguageEnglish: "Emergency Contacts",
		LanguageHindi:   "आपातकालीन संपर्क",
		LanguageTamil:   "அவசர தொடர்புகள்",
	},
	"nav.settings": {
		LanguageEnglish: "Settings",
		LanguageHindi:   "सेटिंग्स",
		LanguageTamil:   "அமைப்புகள்",
	},
	"auth.login": {
		LanguageEnglish: "Login",
		LanguageHindi:   "लॉगिन",
		LanguageTamil:   "உள்நுழைய",
	},
	"auth.logout": {
		LanguageEnglish: "Logout",
		LanguageHindi:   "लॉगआउट",
		LanguageTamil:   "வெளியேறு",
	},
	"auth.register": {
		LanguageEnglish: "Create account",
		LanguageHindi:   "खाता बनाएं",
		LanguageTamil:   "கணக்கை உருவாக்கு",
	},
	"auth.email": {
		LanguageEnglish: "Email address",
		LanguageHindi:   "ईमेल पता",
		LanguageTamil:   "மின்னஞ்சல் முகவரி",
	},
	"auth.password": {
		LanguageEnglish: "Password",
		LanguageHindi:   "पासवर्ड",
		LanguageTamil:   "கடவுச்சொல்",
	},
	"quiz.start": {
		LanguageEnglish: "Start quiz",
		LanguageHindi:   "प्रश्नोत्तरी शुरू करें",
		LanguageTamil:   "வினாடி வினாவைத் தொடங்கு",
	},
	"quiz.submit": {
		LanguageEnglish: "Submit answer",
		LanguageHindi:   "उत्तर जमा करें",
		LanguageTamil:   "பதிலை சமர்ப்பி",
	},
	"quiz.next": {
		LanguageEnglish: "Next question",
		LanguageHindi:   "अगला प्रश्न",
		LanguageTamil:   "அடுத்த கேள்வி",
	},
	"quiz.score": {
		LanguageEnglish: "Your score",
		LanguageHindi:   "आपका स्कोर",
		LanguageTamil:   "உங்கள் மதிப்பெண்",
	},
	"quiz.correct": {
		LanguageEnglish: "Correct!",
		LanguageHindi:   "सही!",
		LanguageTamil:   "சரி!",
	},
	"quiz.incorrect": {
		LanguageEnglish: "Incorrect",
		LanguageHindi:   "गलत",
		LanguageTamil:   "தவறு",
	},
	"quiz.replay": {
		LanguageEnglish: "Try another round",
		LanguageHindi:   "एक और दौर आज़माएं",
		LanguageTamil:   "மற்றொரு சுற்று முயற்சிக்கவும்",
	},
	"laws.title": {
		LanguageEnglish: "Know the Law",
		LanguageHindi:   "कानून जानें",
		LanguageTamil:   "சட்டத்தை அறிக",
	},
	"contacts.title": {
		LanguageEnglish: "Emergency Helplines",
		LanguageHindi:   "आपातकालीन हेल्पलाइन",
		LanguageTamil:   "அவசர உதவி எண்கள்",
	},
	"settings.language": {
		LanguageEnglish: "Display language",
		LanguageHindi:   "प्रदर्शन भाषा",
		LanguageTamil:   "காட்சி மொழி",
	},
	"settings.notifications": {
		LanguageEnglish: "Notifications",
		LanguageHindi:   "सूचनाएं",
		LanguageTamil:   "அறிவிப்புகள்",
	},
	"common.save": {
		LanguageEnglish: "Save",
		LanguageHindi:   "सहेजें",
		LanguageTamil:   "சேமி",
	},
	"common.cancel": {
		LanguageEnglish: "Cancel",
		LanguageHindi:   "रद्द करें",
		LanguageTamil:   "ரத்து செய்",
	},
}
