package bank

import (
	"fmt"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

// UIStrings carries every user-facing string the engine and CLI emit for one
// language. The chat TUI renders these verbatim.
type UIStrings struct {
	Title      string
	AppVersion string

	InputPlaceholder string
	Send             string
	SkipLabel        string

	NoAnswer          string
	Exported          string
	Saved             string
	Imported          string
	ImportError       string
	InvalidDataFormat string

	EndOfQuestions     string
	NotEnoughData      string
	AllExplored        string
	GenericNewQuestion string
	SpeakingOfFormat   string
	ElaborationPrompt  string
	FollowUpFormat     string
	SummaryGeneric     string

	SkipMarker string

	ResetConfirm string
	ResetDone    string

	NoSkipped    string
	SkippedList  string
	NoAnswers    string
	ReportTitle  string
	OtherAnswers string

	UserGuide string
}

var uiStrings = map[domain.Language]UIStrings{
	domain.LangEnglish: {
		Title:      "🌌 Hypatia - User Protocol",
		AppVersion: "Hypatia v1.0.0",

		InputPlaceholder: "Type your answer here...",
		Send:             "Send",
		SkipLabel:        "Skip",

		NoAnswer:          "Please enter an answer!",
		Exported:          "Exported successfully!",
		Saved:             "Saved successfully!",
		Imported:          "Imported successfully!",
		ImportError:       "Error during import! Ensure the file is valid JSON with the correct structure.",
		InvalidDataFormat: "Invalid data format.",

		EndOfQuestions:     "Basic questions are complete! I'll now ask additional questions based on your answers and interactions.",
		NotEnoughData:      "I need more answers to generate new custom questions. Let's continue with some general additional questions.",
		AllExplored:        "It seems we've explored everything for now!",
		GenericNewQuestion: "What's something on your mind right now?",
		SpeakingOfFormat:   "Speaking of %q, can you elaborate more on that topic?",
		ElaborationPrompt:  "Okay, tell me more about that.",
		FollowUpFormat:     "Is there anything more you'd like to add regarding %q?",
		SummaryGeneric:     "You've shared some interesting thoughts. Do you feel we're on the right track to understanding you better?",

		SkipMarker: "[Skipped]",

		ResetConfirm: "Are you sure you want to reset all answers and progress data?",
		ResetDone:    "Reset complete.",

		NoSkipped:    "No questions were skipped!",
		SkippedList:  "Skipped questions:",
		NoAnswers:    "No answers available!",
		ReportTitle:  "Final Report",
		OtherAnswers: "Other Answers",

		UserGuide: `Welcome to Hypatia's Protocol!
- Answer the questions presented in the chat.
- You can skip questions with /skip.
- Use the subcommands to export/import answers or edit them.
- The final report displays all your answers.
- To change the language, use the lang subcommand or /lang in chat.
- You can view and retry skipped questions with the skipped subcommand.`,
	},
	domain.LangArabic: {
		Title:      "🌌 هيباتيا - بروتوكول المستخدم",
		AppVersion: "هيباتيا الإصدار 1.0.0",

		InputPlaceholder: "اكتب إجابتك هنا...",
		Send:             "إرسال",
		SkipLabel:        "تخطي",

		NoAnswer:          "يرجى كتابة إجابة!",
		Exported:          "تم التصدير بنجاح!",
		Saved:             "تم الحفظ بنجاح!",
		Imported:          "تم الاستيراد بنجاح!",
		ImportError:       "خطأ أثناء الاستيراد! تأكد أن الملف JSON صالح وبالهيكل الصحيح.",
		InvalidDataFormat: "تنسيق البيانات غير صالح.",

		EndOfQuestions:     "انتهت الأسئلة الأساسية! سأطرح الآن أسئلة إضافية بناءً على إجاباتك وتفاعلاتك.",
		NotEnoughData:      "أحتاج المزيد من الإجابات لتوليد أسئلة جديدة مخصصة. لنواصل مع بعض الأسئلة الإضافية العامة.",
		AllExplored:        "يبدو أننا استكشفنا كل شيء حاليًا!",
		GenericNewQuestion: "ما هو الشيء الذي تفكر فيه حاليًا؟",
		SpeakingOfFormat:   "بالحديث عن %q، هل يمكنك توضيح المزيد حول هذا الموضوع؟",
		ElaborationPrompt:  "حسنًا، أخبرني المزيد عن ذلك.",
		FollowUpFormat:     "هل هناك المزيد مما تود إضافته بخصوص %q؟",
		SummaryGeneric:     "لقد شاركت بعض الأفكار المثيرة للاهتمام. هل تشعر أننا نسير في الاتجاه الصحيح لفهمك بشكل أفضل؟",

		SkipMarker: "[تم التخطي]",

		ResetConfirm: "هل أنت متأكد من إعادة تعيين جميع الإجابات وبيانات التقدم؟",
		ResetDone:    "تمت إعادة التعيين.",

		NoSkipped:    "لا توجد أسئلة تم تخطيها!",
		SkippedList:  "الأسئلة التي تم تخطيها:",
		NoAnswers:    "لا توجد إجابات!",
		ReportTitle:  "التقرير النهائي",
		OtherAnswers: "إجابات أخرى",

		UserGuide: `مرحباً بك في بروتوكول هيباتيا!
- أجب على الأسئلة المطروحة في الدردشة.
- يمكنك تخطي الأسئلة باستخدام /skip.
- استخدم الأوامر الفرعية لتصدير/استيراد الإجابات أو تحريرها.
- التقرير النهائي يُظهر جميع إجاباتك.
- لتغيير اللغة، استخدم الأمر lang أو /lang في الدردشة.
- يمكنك عرض وإعادة محاولة الأسئلة المتخطاة عبر الأمر skipped.`,
	},
}

var positiveWords = map[domain.Language][]string{
	domain.LangEnglish: {"yes", "sure", "of course", "definitely", "agree", "indeed"},
	domain.LangArabic:  {"نعم", "بالطبع", "أكيد", "صحيح", "أوافق", "تمام"},
}

var stopWords = map[domain.Language][]string{
	domain.LangEnglish: {"the", "a", "is", "i", "you", "what", "my", "and", "that", "with", "this", "have"},
	domain.LangArabic:  {"في", "من", "على", "ما", "هو", "هل", "أنا", "أنت", "التي", "الذي"},
}

var boostRules = map[domain.Language][]domain.BoostRule{
	domain.LangEnglish: {
		{Keyword: "philosophy", SourceCategory: "cognitive_passion", BoostCategories: []string{"thinking_reference", "core_concepts_perspective"}, Factor: 1.5},
		{Keyword: "leadership", SourceCategory: "project_objective", BoostCategories: []string{"edu_prof_background", "inspiring_figures"}, Factor: 1.3},
		{Keyword: "learn", SourceCategory: "cognitive_passion", BoostCategories: []string{"cognitive_tools", "edu_prof_background"}, Factor: 1.2},
	},
	domain.LangArabic: {
		{Keyword: "فلسفة", SourceCategory: "cognitive_passion", BoostCategories: []string{"thinking_reference", "core_concepts_perspective"}, Factor: 1.5},
		{Keyword: "قيادة", SourceCategory: "project_objective", BoostCategories: []string{"edu_prof_background", "inspiring_figures"}, Factor: 1.3},
		{Keyword: "تعلم", SourceCategory: "cognitive_passion", BoostCategories: []string{"cognitive_tools", "edu_prof_background"}, Factor: 1.2},
	},
}

// summaryTemplates render category-specific recaps from a recent answer.
var summaryTemplates = map[domain.Language]map[string]func(answer string) string{
	domain.LangEnglish: {
		"cognitive_passion": func(answer string) string {
			return fmt.Sprintf("So far, I understand you're passionate about %q. Is that accurate?", answer)
		},
		"ethical_values": func(answer string) string {
			return fmt.Sprintf("It seems values like %q are important to you. Is that right?", firstListed(answer))
		},
		"project_objective": func(answer string) string {
			return fmt.Sprintf("I see you have an interest in/goal towards %q. Would you like to elaborate?", truncate(answer, 30))
		},
	},
	domain.LangArabic: {
		"cognitive_passion": func(answer string) string {
			return fmt.Sprintf("حتى الآن، فهمت أن لديك شغفًا بـ%q. هل هذا دقيق؟", answer)
		},
		"ethical_values": func(answer string) string {
			return fmt.Sprintf("يبدو أن قيمًا مثل %q مهمة لك. هل هذا صحيح؟", firstListed(answer))
		},
		"project_objective": func(answer string) string {
			return fmt.Sprintf("أرى أن لديك اهتمامًا بـ/هدفًا نحو %q. هل تود التوسع؟", truncate(answer, 30))
		},
	},
}
