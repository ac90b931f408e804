package model

import "agrirent/shared/constant"

var Languages = []string{constant.LanguageEnglish, constant.LanguageHindi, constant.LanguageMarathi}

var translations = map[string]map[string]string{
	constant.LanguageEnglish: {
		"welcome":           "Welcome",
		"home":              "Home",
		"about":             "About",
		"equipment":         "Equipment",
		"schemes":           "Schemes",
		"login":             "Login",
		"register":          "Register",
		"getStarted":        "Get Started",
		"profile":           "Profile",
		"logout":            "Logout",
		"heroTitle":         "Rent Farm Equipment Easily",
		"heroSubtitle":      "Connect with local equipment owners and get the machinery you need, when you need it.",
		"learnMore":         "Learn More",
		"browseEquipment":   "Browse Equipment",
		"findBestMachinery": "Find the best machinery for your farm",
		"searchPlaceholder": "Search tractors, harvesters...",
		"allCategories":     "All Categories",
		"rentNow":           "Rent Now",
		"viewDetails":       "View Details",
		"totalEstimate":     "Total Estimate",
		"requestBooking":    "Request Booking",
		"noEquipmentFound":  "No equipment found",
		"backToBrowse":      "Back to Browse",
		"noReviewsYet":      "No reviews yet",
		"postReview":        "Post Review",
		"reviews":           "Reviews",
		"yourRating":        "Your Rating",
		"shareExperience":   "Share your experience",
	},
	constant.LanguageHindi: {
		"welcome":           "नमस्ते",
		"home":              "होम",
		"about":             "हमारे बारे में",
		"equipment":         "उपकरण",
		"schemes":           "योजनाएं",
		"login":             "लॉगिन",
		"register":          "पंजीकरण",
		"getStarted":        "शुरू करें",
		"profile":           "प्रोफ़ाइल",
		"logout":            "लॉगआउट",
		"heroTitle":         "कृषि उपकरण आसानी से किराए पर लें",
		"learnMore":         "और जानें",
		"browseEquipment":   "उपकरण देखें",
		"findBestMachinery": "अपने खेत के लिए सबसे अच्छी मशीनरी खोजें",
		"allCategories":     "सभी श्रेणियां",
		"rentNow":           "अभी किराए पर लें",
		"viewDetails":       "विवरण देखें",
		"totalEstimate":     "कुल अनुमान",
		"requestBooking":    "बुकिंग का अनुरोध करें",
		"noEquipmentFound":  "कोई उपकरण नहीं मिला",
		"reviews":           "समीक्षाएं",
	},
	constant.LanguageMarathi: {
		"welcome":           "नमस्कार",
		"home":              "मुख्यपृष्ठ",
		"about":             "आमच्याबद्दल",
		"equipment":         "उपकरणे",
		"schemes":           "योजना",
		"login":             "लॉगिन",
		"register":          "नोंदणी",
		"getStarted":        "सुरु करा",
		"profile":           "प्रोफाइल",
		"logout":            "लॉगआउट",
		"heroTitle":         "शेती उपकरणे सहज भाड्याने घ्या",
		"learnMore":         "अधिक जाणून घ्या",
		"browseEquipment":   "उपकरणे पहा",
		"findBestMachinery": "तुमच्या शेतासाठी सर्वोत्तम यंत्रसामग्री शोधा",
		"allCategories":     "सर्व श्रेणी",
		"rentNow":           "आता भाड्याने घ्या",
		"viewDetails":       "तपशील पहा",
		"totalEstimate":     "एकूण अंदाज",
		"requestBooking":    "बुकिंगची विनंती करा",
		"noEquipmentFound":  "कोणतीही उपकरणे आढळली नाहीत",
		"reviews":           "पुनरावलोकने",
	},
}

func ValidLanguage(lang string) bool {
	_, ok := translations[lang]

	return ok
}

// Translate looks key up in lang, then in English. An unknown key is returned as is.
func Translate(lang, key string) string {
	if value, ok := translations[lang][key]; ok {
		return value
	}

	if value, ok := translations[constant.LanguageEnglish][key]; ok {
		return value
	}

	return key
}

// Messages returns the full table of lang with English filling the gaps.
func Messages(lang string) map[string]string {
	messages := make(map[string]string, len(translations[constant.LanguageEnglish]))

	for key := range translations[constant.LanguageEnglish] {
		messages[key] = Translate(lang, key)
	}

	return messages
}
