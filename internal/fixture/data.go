package fixture

// Curated value tables the generator draws from. Keeping them small and
// readable matters more than variety; fixtures only need to look plausible.

var firstNames = []string{
	"Amira", "Bruno", "Chloe", "Diego", "Elena", "Farid", "Greta", "Hugo",
	"Ines", "Jonas", "Kira", "Liam", "Mina", "Noor", "Oscar", "Priya",
	"Quentin", "Rosa", "Stefan", "Tara",
}

var lastNames = []string{
	"Almeida", "Berger", "Costa", "Dimitrov", "Eriksen", "Fontaine", "Garcia",
	"Haddad", "Ivanova", "Jensen", "Kaya", "Lindqvist", "Moreau", "Nakamura",
	"Okafor", "Petrov", "Quispe", "Rahimi", "Silva", "Tanaka",
}

var cities = []string{
	"Lisbon", "Marrakech", "Kyoto", "Cusco", "Reykjavik", "Tbilisi", "Hanoi",
	"Cartagena", "Dubrovnik", "Queenstown", "Zanzibar", "Petra",
}

var tourThemes = []string{
	"Food Walk", "Old Town Tour", "Sunset Cruise", "Mountain Trek",
	"Street Art Ride", "Wine Tasting", "Desert Safari", "Kayak Expedition",
	"Photography Walk", "Night Market Tour",
}

var companyNames = []string{
	"Wanderlane Tours", "Atlas & Co", "Horizon Trails", "Bluebird Travel",
	"Nomad Collective", "Summit Voyages", "Driftwood Adventures",
	"Golden Compass", "Lanterna Tours", "Meridian Escapes",
}

var notificationTitles = []string{
	"New company registration", "Tour flagged for review",
	"Payout batch completed", "Refund request escalated",
	"Weekly digest ready", "Storage quota warning",
	"New support ticket assigned", "Review flagged by user",
}

var announcementTitles = []string{
	"Scheduled maintenance window", "New payout schedule",
	"Updated content guidelines", "Seasonal campaign kickoff",
	"API deprecation notice", "Holiday support hours",
}

var activityActions = []string{
	"approved tour", "suspended company", "updated banner", "resolved ticket",
	"issued refund", "edited article", "verified company", "removed review",
}

var pendingActionKinds = []string{
	"company_verification", "tour_approval", "refund_request",
	"support_escalation", "content_review",
}

var insightTopics = []string{
	"Last-minute bookings", "Solo travelers", "Eco tours", "Repeat customers",
	"Mobile checkout", "Weekend getaways", "Group discounts", "Shoulder season",
}

var insightDirections = []string{"up", "down", "flat"}

var severities = []string{"info", "warning", "critical"}

var audiences = []string{"all", "companies", "guides"}

var paymentProviders = []string{"stripe", "paypal", "wise", "bank_transfer"}

var accountStatuses = []string{"active", "pending", "disabled"}

var currencies = []string{"USD", "EUR", "GBP", "JPY", "AUD"}

var adPlacements = []string{"sidebar", "email", "popup", "search_top", "home_hero"}

var socialPlatforms = []string{"instagram", "facebook", "x", "youtube", "tiktok", "linkedin"}

var chatSnippets = []string{
	"Hi, I still haven't received my voucher.",
	"Can we move the tour to Saturday?",
	"The meeting point on the map looks wrong.",
	"Thanks, that solved it!",
	"Is hotel pickup included?",
	"My payment went through twice.",
	"The guide was fantastic, just wanted to say thanks.",
	"How do I change the number of travelers?",
}

var emailDomains = []string{"gmail.com", "outlook.com", "proton.me", "yahoo.com"}
