package bot

// Menu labels rendered by the bot. Exact matches are dispatched as menu
// commands and denylisted in the parser.
const (
	LabelRates     = "💱 Курсы валют"
	LabelFiat      = "💵 Основные валюты"
	LabelConverter = "🔄 Конвертер"
	LabelAllRates  = "📊 Все курсы"
	LabelChanges   = "📈 Изменения"
	LabelBack      = "◀️ Назад"
)

func MenuLabels() []string {
	return []string{LabelRates, LabelFiat, LabelConverter, LabelAllRates, LabelChanges, LabelBack}
}

const mainMenuText = "💱 *Курсы валют и конвертер*\n\n" +
	"• 💵 *Основные валюты* - USD, EUR, CNY, GBP\n" +
	"• 🔄 *Конвертер* - перевод между валютами\n" +
	"• 📊 *Все курсы* - полный список\n" +
	"• 📈 *Изменения* - динамика за сутки\n\n" +
	"*Примеры запросов:*\n" +
	"`100 USD to RUB`\n" +
	"`500 евро в доллары`\n" +
	"`конвертировать 1000 рублей в юани`\n\n" +
	"Выберите опцию:"

const converterHelpText = "💱 Конвертер валют\n\n" +
	"Введите запрос в формате:\n" +
	"`100 USD to RUB`\n" +
	"`1000 RUB to EUR`\n" +
	"`500 долларов в рубли`\n" +
	"`конвертировать 50 евро в доллары`\n\n" +
	"Или выберите из меню выше ⬆️"

const backText = "🔙 Возврат в главное меню"
