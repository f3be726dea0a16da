package seed

import "github.com/takeuforward/portal/internal/app/models"

func str(s string) *string { return &s }

var defaultClubs = []models.Club{
	{Name: "TechClub SSN", Category: "Technical", Description: str("Fostering innovation and technical excellence through workshops, hackathons, and project development."), Instagram: str("https://instagram.com/techclub_ssn"), Email: str("techclub@ssn.edu.in"), MeetingTime: str("Every Friday, 4:00 PM")},
	{Name: "SSN IEEE Computer Society", Category: "IEEE", Description: str("Advancing technology for humanity through computer science and engineering initiatives."), Instagram: str("https://instagram.com/ssn_ieee_cs"), Email: str("ieee.cs@ssn.edu.in"), MeetingTime: str("Bi-weekly Wednesdays, 3:30 PM")},
	{Name: "SSN ACM Student Chapter", Category: "ACM", Description: str("Promoting computing education and research through programming contests and technical events."), Instagram: str("https://instagram.com/ssn_acm"), Email: str("acm@ssn.edu.in"), MeetingTime: str("Monthly meetings")},
	{Name: "BuildClub SSN", Category: "Technical", Description: str("Building tomorrow's innovations today through hands-on projects and collaborative learning."), Instagram: str("https://instagram.com/buildclub_ssn"), Email: str("buildclub@ssn.edu.in"), MeetingTime: str("Saturdays, 10:00 AM")},
	{Name: "SSN Coding Club", Category: "Technical", Description: str("Enhancing programming skills through competitive programming and code challenges."), Instagram: str("https://instagram.com/ssn_coding"), Email: str("coding@ssn.edu.in"), MeetingTime: str("Tuesday & Thursday, 5:00 PM")},
	{Name: "SSN Photo Club", Category: "Cultural", Description: str("Capturing moments and telling stories through the lens of creativity and artistry."), Instagram: str("https://instagram.com/ssn_photoclub"), Email: str("photography@ssn.edu.in"), MeetingTime: str("Weekends, flexible timings")},
	{Name: "SSN Gradient Club", Category: "Cultural", Description: str("Exploring the spectrum of arts, design, and creative expression across various mediums."), Instagram: str("https://instagram.com/ssn_gradient"), Email: str("gradient@ssn.edu.in"), MeetingTime: str("Friday evenings")},
	{Name: "SSN Lakshya", Category: "Cultural", Description: str("Aiming for excellence in cultural activities, events, and artistic performances."), Instagram: str("https://instagram.com/ssn_lakshya"), Email: str("lakshya@ssn.edu.in"), MeetingTime: str("Mondays, 4:30 PM")},
}

var defaultLinks = []models.Link{
	{Group: "SSN Official", Label: "SSN Official Website", URL: "https://ssn.edu.in/", Description: str("Main college website")},
	{Group: "SSN Official", Label: "SSN LinkedIn", URL: "https://www.linkedin.com/school/ssn-college-of-engineering/", Description: str("Official LinkedIn page")},
	{Group: "SSN Official", Label: "SSN YouTube", URL: "https://www.youtube.com/c/SSNCollegeofEngineering", Description: str("Official YouTube channel")},
	{Group: "SSN Official", Label: "SSN Instagram", URL: "https://www.instagram.com/ssn_institutions/", Description: str("Official Instagram handle")},
	{Group: "SSN Official", Label: "SSN Facebook", URL: "https://www.facebook.com/SSNCollegeOfEngineering/", Description: str("Official Facebook page")},
	{Group: "Flagship Events", Label: "SSN Instincts", URL: "https://www.instagram.com/ssn_instincts/", Description: str("Annual cultural fest")},
	{Group: "Flagship Events", Label: "Invente", URL: "https://www.instagram.com/invente_ssn/", Description: str("Annual technical symposium")},
	{Group: "Flagship Events", Label: "Instincts Official Page", URL: "https://instincts.ssn.edu.in/", Description: str("Cultural fest official website")},
	{Group: "Flagship Events", Label: "Invente Official Page", URL: "https://invente.ssn.edu.in/", Description: str("Technical symposium website")},
	{Group: "Alumni Network", Label: "SSN Alumni Association", URL: "https://www.linkedin.com/company/ssn-alumni-association/", Description: str("Official alumni network")},
	{Group: "Alumni Network", Label: "Alumni LinkedIn Group", URL: "https://www.linkedin.com/groups/4644510/", Description: str("LinkedIn alumni community")},
	{Group: "Alumni Network", Label: "Alumni Portal", URL: "https://alumni.ssn.edu.in/", Description: str("Alumni registration and networking")},
	{Group: "IEEE Chapters", Label: "IEEE SSN", URL: "https://www.instagram.com/ieee_ssn/", Description: str("IEEE Student Branch")},
	{Group: "IEEE Chapters", Label: "IEEE CS SSN", URL: "https://www.instagram.com/ssn_ieee_cs/", Description: str("Computer Society Chapter")},
	{Group: "IEEE Chapters", Label: "IEEE WIE SSN", URL: "https://www.instagram.com/ssn_ieee_wie/", Description: str("Women in Engineering")},
	{Group: "ACM Chapters", Label: "ACM SSN", URL: "https://www.instagram.com/ssn_acm/", Description: str("ACM Student Chapter")},
	{Group: "ACM Chapters", Label: "ACM-W SSN", URL: "https://www.instagram.com/ssn_acmw/", Description: str("ACM Women Chapter")},
	{Group: "Department & Clubs", Label: "TechClub SSN", URL: "https://www.instagram.com/techclub_ssn/", Description: str("Technical club")},
	{Group: "Department & Clubs", Label: "BuildClub SSN", URL: "https://www.instagram.com/buildclub_ssn/", Description: str("Innovation and building")},
	{Group: "Department & Clubs", Label: "SSN Coding Club", URL: "https://www.instagram.com/ssn_coding/", Description: str("Competitive programming")},
}

var defaultChannels = []models.DiscussionChannel{
	{Label: "SSN Placements Official", Platform: models.PlatformWhatsApp, URL: "https://chat.whatsapp.com/placement-official", TopicTags: []string{"placements", "career"}},
	{Label: "Interview Experiences", Platform: models.PlatformDiscord, URL: "https://discord.gg/ssn-interviews", TopicTags: []string{"placements", "interviews"}},
	{Label: "Resume Reviews", Platform: models.PlatformTelegram, URL: "https://t.me/ssn_resume_reviews", TopicTags: []string{"placements", "resume"}},
	{Label: "SSN Hackathon Hub", Platform: models.PlatformDiscord, URL: "https://discord.gg/ssn-hackathons", TopicTags: []string{"hackathons", "competitions"}},
	{Label: "Competitive Programming", Platform: models.PlatformWhatsApp, URL: "https://chat.whatsapp.com/cp-ssn", TopicTags: []string{"competitions", "dsa"}},
	{Label: "Project Collaborations", Platform: models.PlatformTelegram, URL: "https://t.me/ssn_projects", TopicTags: []string{"projects", "hackathons"}},
	{Label: "CSE Department", Platform: models.PlatformWhatsApp, URL: "https://chat.whatsapp.com/cse-dept", TopicTags: []string{"department", "CSE"}},
	{Label: "IT Department", Platform: models.PlatformWhatsApp, URL: "https://chat.whatsapp.com/it-dept", TopicTags: []string{"department", "IT"}},
	{Label: "ECE Department", Platform: models.PlatformDiscord, URL: "https://discord.gg/ece-ssn", TopicTags: []string{"department", "ECE"}},
	{Label: "GATE Preparation", Platform: models.PlatformTelegram, URL: "https://t.me/ssn_gate_prep", TopicTags: []string{"study", "GATE"}},
	{Label: "Semester Study Groups", Platform: models.PlatformWhatsApp, URL: "https://chat.whatsapp.com/study-groups", TopicTags: []string{"study"}},
	{Label: "Research Discussions", Platform: models.PlatformDiscord, URL: "https://discord.gg/ssn-research", TopicTags: []string{"study", "research"}},
}
