package ui

import "strings"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownload           = "download"
	KeyDownloading        = "downloading"
	KeyEnterURL           = "enter_url"
	KeySelectFolder       = "select_folder"
	KeyCurrentOutputPath  = "current_output_path"
	KeyOpenFolder         = "open_folder"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyDownloadStarted    = "download_started"
	KeyDownloadCompleted  = "download_completed"
	KeyDownloadFailed     = "download_failed"
	KeyDownloaderNotFound = "downloader_not_found"
	KeyErrorOpeningFolder = "error_opening_folder"
)

// DefaultLanguage is used for unknown language codes and missing keys
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Locale forms such as "ru_RU.UTF-8"
// select their language part; unknown codes leave the language unchanged.
func (l *Localization) SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
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
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT-DLP Shell",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownload:           "Download",
		KeyDownloading:        "Downloading...",
		KeyEnterURL:           "Enter YouTube Link",
		KeySelectFolder:       "Select Output Folder",
		KeyCurrentOutputPath:  "Current output path: %s",
		KeyOpenFolder:         "Open folder",
		KeyPleaseEnterURL:     "Please enter a YouTube URL.",
		KeyDownloadStarted:    "Download started...",
		KeyDownloadCompleted:  "Download completed",
		KeyDownloadFailed:     "Download failed",
		KeyDownloaderNotFound: "Could not start the downloader",
		KeyErrorOpeningFolder: "Error opening folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT-DLP Оболочка",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownload:           "Скачать",
		KeyDownloading:        "Загрузка...",
		KeyEnterURL:           "Введите ссылку YouTube",
		KeySelectFolder:       "Выбрать папку",
		KeyCurrentOutputPath:  "Текущая папка: %s",
		KeyOpenFolder:         "Открыть папку",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL YouTube.",
		KeyDownloadStarted:    "Загрузка начата...",
		KeyDownloadCompleted:  "Загрузка завершена",
		KeyDownloadFailed:     "Ошибка загрузки",
		KeyDownloaderNotFound: "Не удалось запустить загрузчик",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YT-DLP Shell",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownload:           "Baixar",
		KeyDownloading:        "Baixando...",
		KeyEnterURL:           "Digite o link do YouTube",
		KeySelectFolder:       "Selecionar pasta",
		KeyCurrentOutputPath:  "Pasta atual: %s",
		KeyOpenFolder:         "Abrir pasta",
		KeyPleaseEnterURL:     "Por favor, digite uma URL do YouTube.",
		KeyDownloadStarted:    "Download iniciado...",
		KeyDownloadCompleted:  "Download concluído",
		KeyDownloadFailed:     "Falha no download",
		KeyDownloaderNotFound: "Não foi possível iniciar o downloader",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
	}
}
