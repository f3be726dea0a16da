package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleSenior  RoleType = "senior"
	RoleAdmin   RoleType = "admin"
)

// Platform is the chat platform a discussion channel lives on
type Platform string

const (
	PlatformWhatsApp Platform = "WhatsApp"
	PlatformDiscord  Platform = "Discord"
	PlatformTelegram Platform = "Telegram"
)
