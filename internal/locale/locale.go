package locale

import "strings"

// DefaultTag is used when the user's language is missing or unsupported
const DefaultTag = "en"

// Bundle holds the message templates for one language
type Bundle struct {
	Greeting string
	Support  string
	Error    string
	PayText  string
	PDFReady string
}

var bundles = map[string]Bundle{
	"ru": {
		Greeting: "Привет, {name}! Я — SmartEdyBot, твой помощник.",
		Support:  "Если тебе нравится моя работа, ты можешь поддержать меня:",
		Error:    "❌ Не удалось создать платёжную сессию. Попробуйте позже.",
		PayText:  "Перейдите по ссылке для оплаты: {url}",
		PDFReady: "Ваш документ готов, отправляю PDF.",
	},
	"en": {
		Greeting: "Hello, {name}! I'm SmartEdyBot, your assistant.",
		Support:  "If you like my work, you can support me:",
		Error:    "❌ Failed to create a payment session. Try again later.",
		PayText:  "Click the link to pay: {url}",
		PDFReady: "Your document is ready. Sending PDF.",
	},
	"de": {
		Greeting: "Hallo, {name}! Ich bin SmartEdyBot, dein Assistent.",
		Support:  "Wenn dir meine Arbeit gefällt, kannst du mich unterstützen:",
		Error:    "❌ Zahlungssitzung konnte nicht erstellt werden. Bitte später versuchen.",
		PayText:  "Zum Bezahlen auf den Link klicken: {url}",
		PDFReady: "Ihr Dokument ist fertig. Sende die PDF-Datei.",
	},
	"es": {
		Greeting: "Hola, {name}! Soy SmartEdyBot, tu asistente.",
		Support:  "Si te gusta mi trabajo, puedes apoyarme:",
		Error:    "❌ No se pudo crear sesión de pago. Intenta más tarde.",
		PayText:  "Enlace de pago: {url}",
		PDFReady: "Tu documento está listo. Enviando PDF.",
	},
	"ar": {
		Greeting: "مرحبًا، {name}! أنا SmartEdyBot مساعدك.",
		Support:  "إذا أعجبك عملي يمكنك دعمي:",
		Error:    "❌ فشل إنشاء جلسة الدفع. حاول لاحقًا.",
		PayText:  "رابط الدفع: {url}",
		PDFReady: "ملفّك جاهز. سأرسل PDF الآن.",
	},
}

// Resolve returns the bundle for tag, falling back to English
func Resolve(tag string) Bundle {
	if b, ok := bundles[tag]; ok {
		return b
	}
	return bundles[DefaultTag]
}

// Tags returns the supported language tags
func Tags() []string {
	return []string{"ru", "en", "de", "es", "ar"}
}

// RenderGreeting fills {name} in the greeting template
func (b Bundle) RenderGreeting(name string) string {
	return strings.Replace(b.Greeting, "{name}", name, 1)
}

// RenderPayText fills {url} in the payment link template
func (b Bundle) RenderPayText(url string) string {
	return strings.Replace(b.PayText, "{url}", url, 1)
}
