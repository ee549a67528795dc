package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// UI texts
const (
	startText = "👋 Welcome! Pick a command from the menu below or use the buttons.\n\n" +
		"Note: the forecast is informational; accuracy depends on the data source."

	helpText = "Available commands:\n" +
		"/weather [city] - current weather\n" +
		"/forecast [city] - 3-day forecast\n" +
		"/setcity [city] - set your default city\n" +
		"/units - switch units\n" +
		"/subscribe - daily weather subscription\n" +
		"/unsubscribe - cancel the subscription"

	needCityText = "Set a default city first with /setcity."

	askTimeText = "Enter the time as HH:MM (for example, 08:00) when you want " +
		"to receive the daily weather."

	badTimeText = "Invalid time format. Try again (for example, 08:00)."

	noCityArgText = "Please specify a city. For example: /weather Paris"

	setCityUsageText = "Please specify a city after the command. For example: /setcity Paris"

	noSubscriptionText = "You have no active subscription."

	unsubscribedText = "Daily weather subscription cancelled."

	unknownCommandText = "Unknown command. Use /help to list available commands."

	buttonGetWeather = "Get weather"
	buttonSettings   = "Settings"

	getWeatherHintText = "Use /weather [city] for a specific city, or set a " +
		"default with /setcity [city]."

	settingsHintText = "Settings:\n" +
		"- Default city: /setcity [city]\n" +
		"- Units: /units"
)

// mainMenuKeyboard is the persistent reply keyboard shown after /start.
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonGetWeather),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonSettings),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// BotCommands is the command menu registered with Telegram at startup.
func BotCommands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "help", Description: "Command reference"},
		{Command: "weather", Description: "Current weather"},
		{Command: "forecast", Description: "3-day weather forecast"},
		{Command: "setcity", Description: "Set your default city"},
		{Command: "units", Description: "Switch measurement units"},
		{Command: "subscribe", Description: "Daily weather subscription"},
		{Command: "unsubscribe", Description: "Cancel the subscription"},
	}
}
