package icon

// brandIcons maps exact hostnames to curated icon URLs for a handful of
// well-known destinations. Exact-match only, no subdomain normalization.
var brandIcons = map[string]string{
	"mail.google.com":  "https://ssl.gstatic.com/ui/v1/icons/mail/rfr/gmail.ico",
	"gmail.com":        "https://ssl.gstatic.com/ui/v1/icons/mail/rfr/gmail.ico",
	"www.youtube.com":  "https://www.youtube.com/s/desktop/favicon_144x144.png",
	"youtube.com":      "https://www.youtube.com/s/desktop/favicon_144x144.png",
	"chat.openai.com":  "https://cdn.oaistatic.com/assets/favicon-180x180.png",
	"chatgpt.com":      "https://cdn.oaistatic.com/assets/favicon-180x180.png",
	"claude.ai":        "https://claude.ai/apple-touch-icon.png",
	"drive.google.com": "https://ssl.gstatic.com/images/branding/product/2x/drive_2020q4_48dp.png",
	"www.dropbox.com":  "https://cfl.dropboxstatic.com/static/images/favicon.ico",
	"outlook.live.com": "https://res.cdn.office.net/assets/mail/pwa/v1/pngs/apple-touch-icon.png",
}
