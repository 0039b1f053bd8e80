package domain

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

type Theme struct {
	Mode         ThemeMode `json:"mode"`
	PrimaryColor string    `json:"primaryColor"`
	Logo         string    `json:"logo"`
}

func DefaultTheme() Theme {
	return Theme{Mode: ThemeLight, PrimaryColor: "#D4AF37", Logo: "/logo.svg"}
}

type ThemeUpdate struct {
	Mode         *ThemeMode `json:"mode" validate:"omitempty,oneof=light dark"`
	PrimaryColor *string    `json:"primaryColor" validate:"omitempty,hexcolor,len=7"`
	Logo         *string    `json:"logo" validate:"omitempty,max=2048"`
}
