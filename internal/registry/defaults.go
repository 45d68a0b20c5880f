package registry

import "compliance-email-datagen/internal/models"

// defaultEmployees is the built-in fund directory. Research and Trading are
// the barrier-separated departments in the default configuration.
var defaultEmployees = []models.Employee{
	{Name: "Sarah Chen", Email: "s.chen@acmefund.com", Department: "Research"},
	{Name: "Marcus Webb", Email: "m.webb@acmefund.com", Department: "Research"},
	{Name: "Priya Sharma", Email: "p.sharma@acmefund.com", Department: "Research"},
	{Name: "Daniel Kim", Email: "d.kim@acmefund.com", Department: "Research"},
	{Name: "James Morrison", Email: "j.morrison@acmefund.com", Department: "Trading"},
	{Name: "Elena Volkov", Email: "e.volkov@acmefund.com", Department: "Trading"},
	{Name: "David Park", Email: "d.park@acmefund.com", Department: "Trading"},
	{Name: "Nicole Brown", Email: "n.brown@acmefund.com", Department: "Trading"},
	{Name: "Michael Torres", Email: "m.torres@acmefund.com", Department: "Portfolio Management"},
	{Name: "Amanda Foster", Email: "a.foster@acmefund.com", Department: "Portfolio Management"},
	{Name: "Robert Hayes", Email: "r.hayes@acmefund.com", Department: "Compliance"},
	{Name: "Jennifer Liu", Email: "j.liu@acmefund.com", Department: "Compliance"},
	{Name: "Kevin O'Brien", Email: "k.obrien@acmefund.com", Department: "Operations"},
	{Name: "Lisa Martinez", Email: "l.martinez@acmefund.com", Department: "Operations"},
	{Name: "Thomas Grant", Email: "t.grant@acmefund.com", Department: "Legal"},
	{Name: "Susan Clark", Email: "s.clark@acmefund.com", Department: "Legal"},
	{Name: "Rachel Kim", Email: "r.kim@acmefund.com", Department: "Client Relations"},
	{Name: "Andrew Bell", Email: "a.bell@acmefund.com", Department: "Client Relations"},
	{Name: "Christopher Lee", Email: "c.lee@acmefund.com", Department: "Risk Management"},
	{Name: "Michelle Wang", Email: "m.wang@acmefund.com", Department: "Risk Management"},
	{Name: "Brian Johnson", Email: "b.johnson@acmefund.com", Department: "Technology"},
	{Name: "Jessica Taylor", Email: "j.taylor@acmefund.com", Department: "Technology"},
}

// defaultTemplates maps each compliance category to its message templates.
// Bodies may reference {sender_name} and {recipient_name}; subjects are used
// verbatim. Rationale strings, where present, feed the fine-tuning output.
var defaultTemplates = map[models.Label][]models.Template{
	models.LabelClean: {
		{
			Label:   models.LabelClean,
			Subject: "Q4 Portfolio Review Meeting",
			Body:    "Hi team,\n\nJust a reminder about our Q4 portfolio review meeting scheduled for Thursday at 2pm. Please come prepared with your sector updates.\n\nThanks,\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "Updated compliance training schedule",
			Body:    "All,\n\nThe annual compliance training has been rescheduled to next Monday. Please block your calendars from 10am-12pm.\n\nBest,\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "Office closure reminder - Holiday",
			Body:    "Team,\n\nJust a friendly reminder that the office will be closed next Friday for the holiday. Please plan accordingly.\n\nRegards,\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "RE: Lunch order for client meeting",
			Body:    "Sounds good. I'll order from the usual place. Can you confirm headcount by noon?\n\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "Monthly risk report - draft for review",
			Body:    "Hi {recipient_name},\n\nAttached is the draft monthly risk report. Please review and send any comments by EOD Wednesday.\n\nThanks,\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "Conference room booking",
			Body:    "Hi,\n\nI've booked the large conference room for our team meeting on Tuesday. Calendar invite to follow.\n\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "System maintenance notification",
			Body:    "Team,\n\nIT has scheduled system maintenance for Saturday 2am-6am. Trading systems will be unavailable during this window.\n\nPlease plan accordingly.\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "Welcome aboard!",
			Body:    "Hi {recipient_name},\n\nWelcome to the team! I've set up your onboarding meetings for next week. Please reach out if you have any questions.\n\nBest,\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "RE: Vacation request",
			Body:    "Approved. Enjoy your time off!\n\n{sender_name}",
		},
		{
			Label:   models.LabelClean,
			Subject: "Weekly team sync notes",
			Body:    "Hi all,\n\nAttached are the notes from today's sync. Action items highlighted in yellow.\n\nThanks,\n{sender_name}",
		},
	},
	models.LabelInsiderTrading: {
		{
			Label:     models.LabelInsiderTrading,
			Subject:   "URGENT - Acme Corp news coming",
			Body:      "Hey,\n\nHeads up - I heard from my contact at Acme that they're announcing a major acquisition tomorrow morning. This isn't public yet. Might want to adjust positions before the announcement.\n\nKeep this between us.\n{sender_name}",
			Rationale: "The email shares a non-public acquisition announcement obtained from a company contact and suggests trading ahead of it.",
		},
		{
			Label:   models.LabelInsiderTrading,
			Subject: "RE: Tech sector positions",
			Body:    "Trust me on this one - load up on TECH before Friday. I can't say more but the earnings will blow expectations away. My source is solid.\n\n{sender_name}",
		},
		{
			Label:   models.LabelInsiderTrading,
			Subject: "Pharma play - time sensitive",
			Body:    "{recipient_name},\n\nFDA approval coming through for BioMed's drug application. Not announced yet but I got word from inside. This could move 30%+. Act fast.\n\n{sender_name}",
		},
		{
			Label:   models.LabelInsiderTrading,
			Subject: "Quiet tip",
			Body:    "Don't share this with anyone - GlobalBank is about to announce layoffs and restructuring. Their stock will tank. You didn't hear this from me.\n\n{sender_name}",
		},
		{
			Label:   models.LabelInsiderTrading,
			Subject: "RE: Market outlook",
			Body:    "Forget the analysis - I have inside info that MegaCorp's CEO is resigning next week. Dump the position before it goes public. This is solid intel.\n\n{sender_name}",
		},
	},
	models.LabelConfidentialityBreach: {
		{
			Label:     models.LabelConfidentialityBreach,
			Subject:   "FW: Client portfolio details",
			Body:      "Hey,\n\nForwarding you the Westbrook pension fund's full portfolio breakdown. They're way overexposed to energy. Don't tell anyone I sent this.\n\n{sender_name}",
			Rationale: "The email forwards a named client's full portfolio breakdown to an unauthorized recipient.",
		},
		{
			Label:   models.LabelConfidentialityBreach,
			Subject: "RE: Hedge fund strategies",
			Body:    "Here's our fund's full trading strategy doc. I know you're at a competitor now but this might help you. Delete after reading.\n\n{sender_name}",
		},
		{
			Label:   models.LabelConfidentialityBreach,
			Subject: "Client list - confidential",
			Body:    "{recipient_name},\n\nAttaching our complete client list with AUM figures. This is strictly confidential but thought it might be useful for your research.\n\n{sender_name}",
		},
		{
			Label:   models.LabelConfidentialityBreach,
			Subject: "Performance data you asked for",
			Body:    "As discussed, here are the detailed performance numbers for our top 5 clients' accounts. Please don't share this externally - I could get in serious trouble.\n\n{sender_name}",
		},
		{
			Label:   models.LabelConfidentialityBreach,
			Subject: "FW: Investor meeting notes",
			Body:    "Forwarding the notes from yesterday's LP meeting. Contains sensitive info about their allocation plans. Keep this to yourself.\n\n{sender_name}",
		},
	},
	models.LabelPersonalTrading: {
		{
			Label:     models.LabelPersonalTrading,
			Subject:   "My stock picks",
			Body:      "Hey,\n\nI bought a bunch of shares in TechStartup Inc last week in my personal account. Looking good so far! You should get in before it pops.\n\n{sender_name}",
			Rationale: "The email discusses undisclosed personal account trading and encourages a colleague to do the same.",
		},
		{
			Label:   models.LabelPersonalTrading,
			Subject: "RE: Investment advice",
			Body:    "For my PA, I'm going heavy into crypto this month. Already moved $50k. Don't mention this to compliance - it's under their radar.\n\n{sender_name}",
		},
		{
			Label:   models.LabelPersonalTrading,
			Subject: "Quick trade question",
			Body:    "{recipient_name},\n\nThinking of buying some puts on a stock we're long in the fund. Just in my personal account though. Should be fine right? Don't want to bother with pre-clearance.\n\n{sender_name}",
		},
		{
			Label:   models.LabelPersonalTrading,
			Subject: "Side investment opportunity",
			Body:    "Found a great IPO coming up. Going to buy in my wife's account to avoid the disclosure requirements. Let me know if you want details.\n\n{sender_name}",
		},
		{
			Label:   models.LabelPersonalTrading,
			Subject: "RE: After hours trading",
			Body:    "Yeah I've been day trading in my Schwab account. Made $20k last month! Haven't reported it yet since it's small amounts. Compliance doesn't need to know everything.\n\n{sender_name}",
		},
	},
	models.LabelInfoBarrierViolation: {
		{
			Label:     models.LabelInfoBarrierViolation,
			Subject:   "Research update - please read",
			Body:      "James,\n\nI know we're not supposed to share this directly, but my team just finished our analysis on Quantum Industries. Rating it a strong buy. Wanted you to have a heads up before it goes through official channels.\n\n- Sarah (Research)",
			Rationale: "A research analyst shares an unpublished rating directly with the trading desk, bypassing the information barrier.",
		},
		{
			Label:   models.LabelInfoBarrierViolation,
			Subject: "RE: Position sizing question",
			Body:    "Between us - research is about to downgrade SolarTech to sell. I'd reduce exposure before the report comes out next week. Don't tell anyone I told you.\n\n{sender_name}",
		},
		{
			Label:   models.LabelInfoBarrierViolation,
			Subject: "Quick question about analysis",
			Body:    "Hey {recipient_name},\n\nI know we have the Chinese wall and all, but can you give me a preview of what research is saying about the industrial sector? Need to know for position sizing today.\n\n{sender_name}",
		},
		{
			Label:   models.LabelInfoBarrierViolation,
			Subject: "FW: Draft research report",
			Body:    "Forwarding the draft research report before it's published. Thought you might want to see the price targets before the trading desk gets them officially.\n\n{sender_name}",
		},
		{
			Label:   models.LabelInfoBarrierViolation,
			Subject: "Sector meeting notes - confidential",
			Body:    "{recipient_name},\n\nHere are notes from our research team meeting on healthcare. We're changing several ratings next week. Keep this between us - I'm not supposed to share pre-publication.\n\n{sender_name}",
		},
	},
}
