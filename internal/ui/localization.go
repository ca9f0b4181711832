package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDataPlaceholder    = "data_placeholder"
	KeyGenerate           = "generate"
	KeyChangeLocation     = "change_location"
	KeyCreateSubfolder    = "create_subfolder"
	KeyOpenFolder         = "open_folder"
	KeyNothingToPreview   = "nothing_to_preview"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyErrorCorrection    = "error_correction"
	KeyBoxSize            = "box_size"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyStatusReady        = "status_ready"
	KeyStatusSaved        = "status_saved"
	KeyStatusDryRun       = "status_dry_run"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyErrorGenerating    = "error_generating"
	KeyInvalidBoxSize     = "invalid_box_size"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "QR Creator",
		KeyDataPlaceholder:    "Data to encode...",
		KeyGenerate:           "Generate & Save",
		KeyChangeLocation:     "Change save location",
		KeyCreateSubfolder:    "Create subfolder",
		KeyOpenFolder:         "Open folder",
		KeyNothingToPreview:   "(Nothing to preview)",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyErrorCorrection:    "Error correction",
		KeyBoxSize:            "Box size (px per module)",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved",
		KeyStatusReady:        "Ready",
		KeyStatusSaved:        "Saved %d QR codes",
		KeyStatusDryRun:       "Generated %d QR codes (dry-run, nothing saved)",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyErrorGenerating:    "Error generating QR code",
		KeyInvalidBoxSize:     "Box size must be a number",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "QR Creator",
		KeyDataPlaceholder:    "Данные для кодирования...",
		KeyGenerate:           "Создать и сохранить",
		KeyChangeLocation:     "Изменить папку",
		KeyCreateSubfolder:    "Создать подпапку",
		KeyOpenFolder:         "Открыть папку",
		KeyNothingToPreview:   "(Нет предпросмотра)",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyErrorCorrection:    "Коррекция ошибок",
		KeyBoxSize:            "Размер модуля (px)",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки сохранены",
		KeyStatusReady:        "Готово",
		KeyStatusSaved:        "Сохранено QR-кодов: %d",
		KeyStatusDryRun:       "Создано QR-кодов: %d (без сохранения)",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyErrorGenerating:    "Ошибка создания QR-кода",
		KeyInvalidBoxSize:     "Размер модуля должен быть числом",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "QR Creator",
		KeyDataPlaceholder:    "Dados para codificar...",
		KeyGenerate:           "Gerar e Salvar",
		KeyChangeLocation:     "Alterar local",
		KeyCreateSubfolder:    "Criar subpasta",
		KeyOpenFolder:         "Abrir pasta",
		KeyNothingToPreview:   "(Nada para visualizar)",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyErrorCorrection:    "Correção de erros",
		KeyBoxSize:            "Tamanho do módulo (px)",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas",
		KeyStatusReady:        "Pronto",
		KeyStatusSaved:        "%d códigos QR salvos",
		KeyStatusDryRun:       "%d códigos QR gerados (sem salvar)",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyErrorGenerating:    "Erro ao gerar código QR",
		KeyInvalidBoxSize:     "O tamanho do módulo deve ser um número",
	}
}
