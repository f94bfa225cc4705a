package i18n

var translations = map[string]map[string]string{
	"en": {
		"delete":                      "Delete",
		"cancel":                      "Cancel",
		"delete_confirmation_title":   "Are you sure?",
		"delete_confirmation_message": "The note will be deleted without the possibility of recovery.",
		"save":                        "Save",
		"title":                       "Title",
		"note":                        "Note",
		"system":                      "System",
		"dark":                        "Dark",
		"light":                       "Light",
		"language":                    "Language",
		"theme":                       "Theme",
		"settings":                    "Settings",
		"source_code":                 "Source code",
		"notes":                       "Notes",
		"no_notes":                    "No notes yet",
		"untitled":                    "(untitled)",
		"saved":                       "Saved",
		"nothing_to_save":             "Nothing to save",
		"deleted":                     "Deleted",
		"not_found":                   "Note not found",
		"editor_closed":               "No note is open",
	},
	"ru": {
		"delete":                      "Удалить",
		"cancel":                      "Отмена",
		"delete_confirmation_title":   "Вы уверены?",
		"delete_confirmation_message": "Заметка будет удалена без возможности восстановления.",
		"save":                        "Сохранить",
		"title":                       "Заголовок",
		"note":                        "Заметка",
		"system":                      "Системная",
		"dark":                        "Тёмная",
		"light":                       "Светлая",
		"language":                    "Язык",
		"theme":                       "Тема",
		"settings":                    "Настройки",
		"source_code":                 "Исходный код",
		"notes":                       "Заметки",
		"no_notes":                    "Заметок пока нет",
		"untitled":                    "(без заголовка)",
		"saved":                       "Сохранено",
		"nothing_to_save":             "Нечего сохранять",
		"deleted":                     "Удалено",
		"not_found":                   "Заметка не найдена",
		"editor_closed":               "Нет открытой заметки",
	},
}
