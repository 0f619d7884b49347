package domain

var appPermissions = &Catalog{
	Slug:                "mobile-app-permissions",
	Aliases:             []string{"app-permissions", "appperm"},
	Name:                "Mobile App Permissions",
	Category:            "App Permissions",
	Description:         "Test your knowledge about mobile app permissions and privacy",
	Collection:          "appperm_assessments",
	FallbackExplanation: "Consider reviewing your understanding of app permissions. Focus on why apps request specific permissions and how to grant only what's necessary.",
	Advice: map[string]string{
		"wrong":        "Review the fundamentals of app permissions and their importance for mobile security.",
		"beginner":     "Good start! Deepen your understanding of permission types and their implications.",
		"basic":        "Good start! Deepen your understanding of permission types and their implications.",
		"intermediate": "Well done! Consider exploring advanced permission management techniques.",
		"advanced":     "Excellent! Stay updated with latest mobile security best practices.",
	},
	DefaultAdvice: "Continue learning about mobile app security.",
	Recommendations: Recommendations{
		LowBase:           "Your assessment indicates you need to strengthen your understanding of app permissions. Start with basic security concepts.",
		LowSchool:         "Consider taking online courses on mobile security basics. Focus on understanding why apps need permissions.",
		LowHigher:         "Review documentation on Android and iOS permission models. Practice analyzing real app permission requests.",
		ModerateBase:      "You have a moderate understanding (confidence: %.1f%%). Focus on advanced permission scenarios.",
		ModerateFollowUp:  "Study runtime permissions, dangerous permissions, and privacy implications.",
		HighBase:          "Excellent! Your awareness is high (confidence: %.1f%%). Continue staying updated with latest security practices.",
		HighFollowUp:      "Explore advanced topics like permission groups, special permissions, and security auditing.",
		ProficiencySchool: "Keep learning! Mobile security is an important skill for your digital safety.",
		ProficiencyHigh:   "Share your knowledge with others and consider contributing to mobile security awareness.",
	},
	Topics: []Topic{
		{Name: "location_permissions", Keywords: []string{"location", "gps", "tracking", "where"}, SearchTerms: []string{"app location permission guide", "mobile location privacy"}},
		{Name: "camera_microphone", Keywords: []string{"camera", "microphone", "record", "photo"}, SearchTerms: []string{"app camera permission security", "microphone access control"}},
		{Name: "contact_access", Keywords: []string{"contacts", "phone book", "address book"}, SearchTerms: []string{"app contact permission risks", "contact privacy protection"}},
		{Name: "storage_permissions", Keywords: []string{"storage", "files", "photos", "documents"}, SearchTerms: []string{"app file access security", "mobile storage permissions"}},
		{Name: "network_permissions", Keywords: []string{"internet", "network", "data", "wifi"}, SearchTerms: []string{"app internet permission guide", "mobile network security"}},
		{Name: "permission_review", Keywords: []string{"review", "check", "manage", "audit"}, SearchTerms: []string{"app permission audit guide", "mobile security checkup"}},
	},
	DefaultTopic: Topic{Name: "permission_understanding", SearchTerms: []string{"mobile app permissions explained", "smartphone security basics"}},
}

var deviceSecurity = &Catalog{
	Slug:                "device-security",
	Aliases:             []string{"device"},
	Name:                "Device Security",
	Category:            "Device Security",
	Description:         "Evaluate your device security awareness",
	Collection:          "device_assessments",
	FallbackExplanation: "Consider reviewing your understanding of device security. Focus on best practices.",
	Advice: map[string]string{
		"wrong":        "Review the fundamentals of device security and protection measures.",
		"beginner":     "Good start! Deepen your understanding of device security.",
		"basic":        "Good start! Deepen your understanding of device security.",
		"intermediate": "Well done! Consider exploring advanced device protection techniques.",
		"advanced":     "Excellent! Stay updated with latest device security practices.",
	},
	DefaultAdvice: "Continue learning about device security.",
	Recommendations: Recommendations{
		LowBase:          "Your assessment indicates you need to strengthen your safe browsing knowledge. Start with basic online safety concepts.",
		LowSchool:        "Consider taking online courses on safe browsing and internet security.",
		LowHigher:        "Review documentation on safe browsing policies and best practices.",
		ModerateBase:     "You have a moderate understanding (confidence: %.1f%%). Focus on advanced safe browsing techniques.",
		ModerateFollowUp: "Study VPN usage, secure connections, and browser security settings.",
		HighBase:         "Excellent! Your awareness is high (confidence: %.1f%%). Continue staying updated with latest browsing security practices.",
		HighFollowUp:     "Explore advanced topics like browser hardening and privacy tools.",
	},
	Topics: []Topic{
		{Name: "screen_lock", Keywords: []string{"lock", "pin", "passcode", "biometric", "fingerprint"}, SearchTerms: []string{"phone screen lock guide", "device authentication settings"}},
		{Name: "software_updates", Keywords: []string{"update", "patch", "upgrade", "version"}, SearchTerms: []string{"why install security updates", "automatic updates setup"}},
		{Name: "malware_protection", Keywords: []string{"antivirus", "malware", "virus", "install"}, SearchTerms: []string{"mobile antivirus comparison", "malware protection basics"}},
		{Name: "network_safety", Keywords: []string{"wifi", "wi-fi", "bluetooth", "public network", "vpn"}, SearchTerms: []string{"public wifi safety", "vpn usage guide"}},
		{Name: "data_backup", Keywords: []string{"backup", "lost", "stolen", "encrypt"}, SearchTerms: []string{"device backup strategy", "device encryption guide"}},
	},
	DefaultTopic: Topic{Name: "device_security_fundamentals", SearchTerms: []string{"device security basics", "smartphone protection checklist"}},
}

var passwordSecurity = &Catalog{
	Slug:                "password-security",
	Aliases:             []string{"password"},
	Name:                "Password Security",
	Category:            "Password Security",
	Description:         "Assess your password security practices and knowledge",
	Collection:          "password_assessments",
	FallbackExplanation: "Consider reviewing your understanding of password security. Focus on best practices.",
	Advice: map[string]string{
		"wrong":        "Review the fundamentals of password security and authentication.",
		"beginner":     "Good start! Deepen your understanding of password best practices.",
		"basic":        "Good start! Deepen your understanding of password best practices.",
		"intermediate": "Well done! Consider exploring advanced authentication techniques.",
		"advanced":     "Excellent! Stay updated with latest password security practices.",
	},
	DefaultAdvice: "Continue learning about password security.",
	Recommendations: Recommendations{
		LowBase:          "Your assessment indicates you need to strengthen your password security knowledge. Start with basic authentication concepts.",
		LowSchool:        "Consider taking online courses on password management.",
		LowHigher:        "Review documentation on password policies and best practices.",
		ModerateBase:     "You have a moderate understanding (confidence: %.1f%%). Focus on advanced password security.",
		ModerateFollowUp: "Study multi-factor authentication and password managers.",
		HighBase:         "Excellent! Your awareness is high (confidence: %.1f%%). Continue staying updated with latest security practices.",
		HighFollowUp:     "Explore advanced topics like passwordless authentication.",
	},
	Topics: []Topic{
		{Name: "password_strength", Keywords: []string{"strong", "length", "complex", "character"}, SearchTerms: []string{"how to create a strong password", "passphrase guide"}},
		{Name: "password_reuse", Keywords: []string{"reuse", "same password", "multiple accounts", "share"}, SearchTerms: []string{"password reuse risks", "credential stuffing explained"}},
		{Name: "password_managers", Keywords: []string{"manager", "store", "remember", "write"}, SearchTerms: []string{"password manager comparison", "password vault setup"}},
		{Name: "multi_factor_authentication", Keywords: []string{"two-factor", "2fa", "mfa", "otp", "verification"}, SearchTerms: []string{"two factor authentication setup", "authenticator app guide"}},
	},
	DefaultTopic: Topic{Name: "password_fundamentals", SearchTerms: []string{"password security basics", "account protection tips"}},
}

var phishingDetection = &Catalog{
	Slug:                "phishing-detection",
	Aliases:             []string{"phishing"},
	Name:                "Phishing Detection",
	Category:            "Phishing Detection",
	Description:         "Learn to identify and avoid phishing attacks",
	Collection:          "phishing_assessments",
	FallbackExplanation: "Consider reviewing your understanding of phishing. Focus on checking senders, links and unexpected requests.",
	Advice: map[string]string{
		"wrong":        "Review the fundamentals of phishing and how attackers impersonate trusted senders.",
		"beginner":     "Good start! Deepen your understanding of common phishing indicators.",
		"basic":        "Good start! Deepen your understanding of common phishing indicators.",
		"intermediate": "Well done! Consider exploring targeted phishing and link analysis techniques.",
		"advanced":     "Excellent! Stay updated with latest phishing campaigns and reporting practices.",
	},
	DefaultAdvice: "Continue learning about phishing detection.",
	Recommendations: Recommendations{
		LowBase:          "Your assessment indicates you need to strengthen your phishing detection skills. Start with basic email safety concepts.",
		LowSchool:        "Consider taking online courses on recognising phishing emails and messages.",
		LowHigher:        "Review documentation on phishing reporting procedures and email authentication.",
		ModerateBase:     "You have a moderate understanding (confidence: %.1f%%). Focus on advanced phishing scenarios.",
		ModerateFollowUp: "Study spear phishing, URL inspection, and sender verification.",
		HighBase:         "Excellent! Your awareness is high (confidence: %.1f%%). Continue staying updated with latest phishing techniques.",
		HighFollowUp:     "Explore advanced topics like SPF, DKIM, DMARC and phishing simulations.",
	},
	Topics: []Topic{
		{Name: "suspicious_links", Keywords: []string{"link", "url", "click", "website"}, SearchTerms: []string{"how to check a link before clicking", "phishing url examples"}},
		{Name: "email_verification", Keywords: []string{"email", "sender", "address", "domain"}, SearchTerms: []string{"verify email sender", "email spoofing explained"}},
		{Name: "attachments", Keywords: []string{"attachment", "download", "file", "invoice"}, SearchTerms: []string{"malicious email attachments", "safe attachment handling"}},
		{Name: "urgency_tactics", Keywords: []string{"urgent", "immediately", "account suspended", "prize", "reward"}, SearchTerms: []string{"phishing urgency tactics", "too good to be true scams"}},
		{Name: "smishing_vishing", Keywords: []string{"sms", "text message", "call", "phone"}, SearchTerms: []string{"smishing examples", "vishing scam awareness"}},
	},
	DefaultTopic: Topic{Name: "phishing_fundamentals", SearchTerms: []string{"what is phishing", "phishing awareness basics"}},
}

var socialEngineering = &Catalog{
	Slug:                "social-engineering",
	Aliases:             []string{"social"},
	Name:                "Social Engineering",
	Category:            "Social Engineering",
	Description:         "Understand social engineering tactics and defenses",
	Collection:          "social_assessments",
	FallbackExplanation: "Consider reviewing your understanding of social engineering. Focus on verifying identities before sharing information.",
	Advice: map[string]string{
		"wrong":        "Review the fundamentals of social engineering and manipulation tactics.",
		"beginner":     "Good start! Deepen your understanding of pretexting and impersonation.",
		"basic":        "Good start! Deepen your understanding of pretexting and impersonation.",
		"intermediate": "Well done! Consider exploring advanced social engineering defenses.",
		"advanced":     "Excellent! Stay updated with latest social engineering trends.",
	},
	DefaultAdvice: "Continue learning about social engineering.",
	Recommendations: Recommendations{
		LowBase:          "Your assessment indicates you need to strengthen your social engineering awareness. Start with basic manipulation tactics.",
		LowSchool:        "Consider taking online courses on recognising scams and manipulation.",
		LowHigher:        "Review documentation on identity verification policies and best practices.",
		ModerateBase:     "You have a moderate understanding (confidence: %.1f%%). Focus on advanced social engineering scenarios.",
		ModerateFollowUp: "Study pretexting, baiting, tailgating, and verification procedures.",
		HighBase:         "Excellent! Your awareness is high (confidence: %.1f%%). Continue staying updated with latest security practices.",
		HighFollowUp:     "Explore advanced topics like red team exercises and security culture programs.",
	},
	Topics: []Topic{
		{Name: "pretexting", Keywords: []string{"caller", "pretend", "impersonat", "it support", "manager"}, SearchTerms: []string{"pretexting attack examples", "caller verification procedure"}},
		{Name: "physical_access", Keywords: []string{"tailgat", "badge", "door", "office", "visitor"}, SearchTerms: []string{"tailgating prevention", "physical security awareness"}},
		{Name: "baiting", Keywords: []string{"usb", "free", "gift", "found"}, SearchTerms: []string{"baiting attack usb", "free offer scams"}},
		{Name: "information_sharing", Keywords: []string{"social media", "share", "personal information", "post"}, SearchTerms: []string{"oversharing on social media", "personal data protection"}},
	},
	DefaultTopic: Topic{Name: "social_engineering_fundamentals", SearchTerms: []string{"social engineering explained", "manipulation tactics awareness"}},
}
