package models

type CreateAccountRequest struct {
	Name              string  `json:"name"`
	Platform          string  `json:"platform"`
	URL               *string `json:"url"`
	DailyPublishLimit int     `json:"dailyPublishLimit"`
}

type UpdateAccountRequest struct {
	Name              string  `json:"name"`
	Platform          string  `json:"platform"`
	URL               *string `json:"url"`
	DailyPublishLimit int     `json:"dailyPublishLimit"`
}

type Account struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Platform          string  `json:"platform"`
	URL               *string `json:"url"`
	BlogScore         int     `json:"blogScore"`
	DailyPublishLimit int     `json:"dailyPublishLimit"`
}

type GetAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}
