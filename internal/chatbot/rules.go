package chatbot

const leadReply = "Thank you! I've passed your details to our team and someone will reach out within 2 hours " +
	"with a personalized quote. Is there anything else I can help you with?"

// Order matters: the first rule with a matching keyword wins.
var defaultRules = []rule{
	{
		name:     "thanks",
		keywords: []string{"thank you", "thanks", "thx"},
		reply:    "You're welcome! If you have any other questions, I'm here to help. Have a great day! 😊",
	},
	{
		name:     "pricing",
		keywords: []string{"price", "prices", "pricing", "cost", "costs", "how much", "quote", "estimate", "rate", "rates"},
		reply: "Our pricing: Basic Moving starts at $299, Full Service (moving + cleaning) is $599, and the Premium Package is $999. " +
			"House cleaning starts at $149 and office cleaning at $99. For an exact quote, share your phone number or email and we'll get back to you within 2 hours!",
	},
	{
		name:     "booking",
		keywords: []string{"book", "booking", "schedule", "appointment", "reserve", "available", "availability"},
		reply: "You can book right on our site using the booking form: pick your service, preferred date and time, and we'll confirm within 2 hours. " +
			"We recommend booking 2-3 weeks ahead in summer.",
	},
	{
		name:     "moving",
		keywords: []string{"move", "moving", "movers", "relocate", "relocation", "packing", "pack", "furniture"},
		reply: "We offer residential and commercial moving with professional packing, furniture assembly, fragile item protection, and storage solutions. " +
			"Office moves can be done over the weekend for zero downtime.",
	},
	{
		name:     "cleaning",
		keywords: []string{"clean", "cleaning", "cleaners", "deep clean", "carpet", "windows", "sanitize", "sanitization"},
		reply: "Our cleaning services cover deep cleaning, carpet and window cleaning, post-construction cleanup, and regular office cleaning. " +
			"Move-out cleaning pairs nicely with our moving packages!",
	},
	{
		name:     "hours",
		keywords: []string{"hours", "open", "opening", "weekend", "sunday", "saturday"},
		reply:    "We're open Monday - Saturday, 8:00 AM - 6:00 PM, and offer 24/7 emergency service by phone at (501) 575-5189.",
	},
	{
		name:     "area",
		keywords: []string{"area", "areas", "where", "location", "ohio", "kentucky", "indiana", "serve"},
		reply:    "We proudly serve Ohio, Kentucky, and Indiana, including Cincinnati, Louisville, Indianapolis, and Columbus.",
	},
	{
		name:     "insurance",
		keywords: []string{"insured", "insurance", "licensed", "license", "damage", "liability"},
		reply:    "Yes, we're fully licensed and insured, with comprehensive liability coverage and extra protection options for valuable items.",
	},
	{
		name:     "contact",
		keywords: []string{"phone", "call", "email", "contact", "talk", "human", "agent"},
		reply:    "You can call us at (501) 575-5189 or email info@swiftmoveclean.com. Or leave your number here and we'll call you back!",
	},
	{
		name:     "greeting",
		keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"},
		reply:    "Hello! 👋 Are you planning a move, looking for cleaning, or both? I can share pricing and help you book.",
	},
}
