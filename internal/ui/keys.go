package ui

// keymap names the keys for list-mode actions. Input modes (add, edit)
// use enter/esc/tab and are not remappable.
type keymap struct {
	Up      string
	Down    string
	Add     string
	Edit    string
	Toggle  string
	Delete  string
	Restore string
	Quit    string
}

func defaultKeymap() keymap {
	return keymap{
		Up:      "k",
		Down:    "j",
		Add:     "a",
		Edit:    "e",
		Toggle:  " ",
		Delete:  "d",
		Restore: "r",
		Quit:    "q",
	}
}
