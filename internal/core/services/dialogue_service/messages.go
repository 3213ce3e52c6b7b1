package dialogue_service

// Тексты ответов бота
const (
	msgConsentPrompt = "Щоб продовжити роботу з ботом, погодьтеся зі збором і обробкою особистих даних " +
		"у вигляді ПІБ та номера телефону"
	msgCaptchaEnter      = "Введіть капчу"
	msgCaptchaFailed     = "Виникла помилка при створенні капчі"
	msgCaptchaCorrect    = "Капча вірна"
	msgCaptchaIncorrect  = "Капча невірна"
	msgCaptchaRegenerate = "Занадто велика кількість спроб, генеруємо нову капчу"
	msgBanned            = "Ви були заблоковані, якщо вважаєте, що виникла помилка, то зверніться до оператора технічної підтримки"

	msgFullNamePrompt  = "Введіть своє ПІБ через пробіл. Наприклад: 'Іванов Іван Іванович'"
	msgFullNameInvalid = "Невірно введено ПІБ, спробуйте ще раз!"
	msgFullNameUnknown = "Вас не вдалося знайти у списку заявок на вступ, можливо ви помилилися у введених даних. Спробуйте ще раз."
	msgRosterError     = "Сталася помилка при перевірці валідності користувача, спробуйте ще раз ввести ПІБ"

	msgPhonePrompt   = "Введіть номер телефону у форматі +380XXXXXXXXX або 0XXXXXXXXX"
	msgPhoneInvalid  = "Неправильно введено номер телефону, спробуйте ще раз!"
	msgRegisterError = "Помилка при реєстрації користувача!"

	msgChooseDay        = "Виберіть день для запису"
	msgDayInvalidFormat = "Введено невірний формат дня"
	msgDayNotFound      = "Зазначений день не знайдено"
	msgChooseInterval   = "Виберіть проміжок часу"
	msgChooseTime       = "Виберіть час"
	msgTimeInvalid      = "Введено невірний формат часу"
	msgDayIsOver        = "Ви не можете більше записатися на цей день, виберіть інше число"
	msgTimeTaken        = "Не вдалося записатися на цей час, його вже зайняли"
	msgTimeCheckError   = "Не вдалося перевірити, чи зайнятий вибраний час"
	msgQueueError       = "Не вдалося зареєструватися в черзі, виникла помилка"

	msgNotificationsOn  = "Сповіщення про чергу увімкнено"
	msgNotificationsOff = "Сповіщення про чергу вимкнено"
	msgGenericError     = "Помилка при виконанні команди"
)

// Кнопки клавиатур
const (
	buttonAgree     = "✅"
	buttonDisagree  = "❌"
	buttonBack      = "Повернутись назад 🔙"
	buttonOtherDate = "Вибір іншої дати 🔙"
)

// Форматы дат и времени в сообщениях и на кнопках
const (
	dayButtonLayout = "02.01"
	dateLayout      = "02.01.2006"
	timeLayout      = "15:04"
)
