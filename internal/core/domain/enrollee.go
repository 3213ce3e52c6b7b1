package domain

// Enrollee - абитуриент, прошедший проверку по спискам приемной комиссии.
// ChatID телеграм-чата служит первичным ключом.
type Enrollee struct {
	ChatID        int64  `db:"chat_id" json:"chatId"`
	Username      string `db:"username" json:"username"`
	Name          string `db:"name" json:"name"`
	Patronymic    string `db:"patronymic" json:"patronymic"`
	LastName      string `db:"last_name" json:"lastName"`
	PhoneNumber   string `db:"phone_number" json:"phoneNumber"`
	Banned        bool   `db:"banned" json:"banned"`
	Notifications bool   `db:"notifications" json:"notifications"`
}
