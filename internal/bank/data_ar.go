package bank

import "github.com/hypatia-cli/hypatia/internal/domain"

var arabicCategories = []domain.Category{
	{
		Key:       "personal_data",
		Title:     "👤 بيانات شخصية",
		Kind:      domain.InputText,
		Questions: []string{"ما هو اسمك؟", "ما تاريخ ميلادك؟", "ما هي جنسيتك؟", "ما اللغات التي تتحدثها؟"},
		Keywords:  []string{"اسم", "ميلاد", "جنسية", "لغة", "هوية"},
	},
	{
		Key:       "social_status",
		Title:     "👥 الحالة الاجتماعية",
		Kind:      domain.InputSelect,
		Options:   []string{"أعزب", "متزوج", "مطلق", "أرمل"},
		Questions: []string{"ما هي حالتك الاجتماعية؟", "كيف تصف علاقاتك الأسرية؟", "ما أهم العلاقات في حياتك؟"},
		Keywords:  []string{"عائلة", "زواج", "علاقة", "أصدقاء", "اجتماعي"},
	},
	{
		Key:       "edu_prof_background",
		Title:     "🎓 الخلفية التعليمية/المهنية",
		Kind:      domain.InputText,
		Questions: []string{"ما هو مجال دراستك؟", "ما هي الشهادات التي حصلت عليها؟", "ما خبراتك المهنية؟", "ما هي مهاراتك الرئيسية؟"},
		Keywords:  []string{"تعليم", "دراسة", "شهادة", "جامعة", "مهنة", "مهارة", "عمل"},
	},
	{
		Key:       "thinking_reference",
		Title:     "💭 مرجعية التفكير",
		Kind:      domain.InputSelect,
		Options:   []string{"عقلانية", "حدسية", "دينية", "تجريبية"},
		Questions: []string{"ما هي مرجعيتك الفكرية؟", "هل تفضل التفكير العقلاني أم الحدسي؟", "ما الذي يشكل أفكارك؟"},
		Keywords:  []string{"تفكير", "عقلاني", "حدس", "منطق", "اعتقاد"},
	},
	{
		Key:       "cognitive_passion",
		Title:     "🔥 الشغف المعرفي",
		Kind:      domain.InputText,
		Questions: []string{"ما هو شغفك المعرفي؟", "كيف تستكشف اهتماماتك الفكرية؟", "ما الذي يلهمك للتعلم؟", "ما هي المجالات التي تحب استكشافها؟"},
		Keywords:  []string{"شغف", "فضول", "تعلم", "اهتمام", "استكشاف", "معرفة"},
	},
	{
		Key:       "ethical_values",
		Title:     "⚖️ القيم الأخلاقية",
		Kind:      domain.InputCheckbox,
		Options:   []string{"العدل", "الصدق", "الرحمة", "الاحترام", "النزاهة", "المسؤولية"},
		Questions: []string{"ما هي القيم الأخلاقية الأكثر أهمية؟", "كيف تطبق قيمك في حياتك؟", "ما الذي يميز أخلاقياتك؟"},
		Keywords:  []string{"أخلاق", "قيم", "عدالة", "صدق", "نزاهة"},
	},
	{
		Key:       "core_concepts_perspective",
		Title:     "🌍 منظور المفاهيم الجوهرية",
		Kind:      domain.InputText,
		Questions: []string{"ما هي المفاهيم الجوهرية التي تؤمن بها؟", "كيف تفسر الحرية؟", "ما هو مفهوم الجمال بالنسبة لك؟", "ما هي الحقيقة في نظرك؟"},
		Keywords:  []string{"حرية", "حقيقة", "جمال", "معنى", "مفهوم", "منظور"},
	},
	{
		Key:       "cognitive_tools",
		Title:     "🛠️ الأدوات المعرفية",
		Kind:      domain.InputText,
		Questions: []string{"ما هي الأدوات المعرفية التي تستخدمها؟", "كيف تستخدم المنطق في قراراتك؟", "ما هي أساليب التفكير التي تفضلها؟"},
		Keywords:  []string{"أدوات", "منهج", "منطق", "تحليل", "استدلال"},
	},
	{
		Key:       "inspiring_figures",
		Title:     "🌟 الشخصيات الملهمة",
		Kind:      domain.InputText,
		Questions: []string{"من هي الشخصية الملهمة بالنسبة لك؟", "لماذا تعتبر هذه الشخصية مؤثرة؟", "كيف أثرت عليك؟"},
		Keywords:  []string{"إلهام", "قدوة", "شخصية", "تأثير"},
	},
	{
		Key:       "intellectual_sins",
		Title:     "⚠️ الخطايا الفكرية",
		Kind:      domain.InputCheckbox,
		Options:   []string{"التحيز التأكيدي", "الدوغماتية", "التفكير الجماعي", "التبسيط المفرط", "التعميم المتسرع"},
		Questions: []string{"ما التحيزات الفكرية التي تتجنبها؟", "كيف تتعامل مع الدوغماتية؟", "ما هي أخطاء التفكير الشائعة؟"},
		Keywords:  []string{"تحيز", "مغالطة", "دوغمائية", "خطأ", "تعميم"},
	},
	{
		Key:       "project_objective",
		Title:     "📈 المشروع/الهدف",
		Kind:      domain.InputText,
		Questions: []string{"ما هو مشروعك الحالي؟", "ما هي أهدافك المهنية؟", "ما الذي تريد تحقيقه خلال 5 سنوات؟", "كيف تخطط لمشروعك؟"},
		Keywords:  []string{"مشروع", "هدف", "خطة", "طموح", "إنجاز"},
	},
	{
		Key:       "pivotal_example",
		Title:     "📖 مثال محوري",
		Kind:      domain.InputText,
		Questions: []string{"ما هو المثال المحوري الذي أثر فيك؟", "كيف شكل هذا المثال تفكيرك؟", "ما القصة التي تريد مشاركتها؟"},
		Keywords:  []string{"قصة", "مثال", "تجربة", "درس", "لحظة"},
	},
	{
		Key:       "causal_relations",
		Title:     "🔗 العلاقات السببية",
		Kind:      domain.InputText,
		Questions: []string{"ما هي العلاقة السببية التي تراها بين الأفكار؟", "كيف تربط بين المفاهيم؟", "ما الذي يؤثر على قراراتك؟"},
		Keywords:  []string{"سبب", "نتيجة", "ترابط", "علاقة"},
	},
	{
		Key:       "llm_persona",
		Title:     "🤖 شخصية النموذج",
		Kind:      domain.InputSelect,
		Options:   []string{"مساعد تحليلي", "مستشار ودود", "معلم", "مفكر نقدي", "مستكشف فضولي"},
		Questions: []string{"ما هو الدور المفضل للنموذج؟", "كيف تريد أن يكون النموذج مساعدًا؟", "ما هي شخصية النموذج المثالية؟"},
		Keywords:  []string{"مساعد", "شخصية", "دور", "مستشار", "نموذج"},
	},
	{
		Key:       "conceptual_tuning",
		Title:     "⚙️ تهيئة المفاهيم",
		Kind:      domain.InputText,
		Questions: []string{"ما هي المصطلحات الخاصة التي تستخدمها؟", "كيف تعرف مفاهيمك؟", "ما الذي يميز لغتك الفكرية؟"},
		Keywords:  []string{"مصطلح", "تعريف", "مفردات", "دقة"},
	},
	{
		Key:       "interaction_style",
		Title:     "💬 أسلوب التفاعل",
		Kind:      domain.InputSelect,
		Options:   []string{"تحليلي", "ودود", "موجز", "تفصيلي", "سقراطي"},
		Questions: []string{"ما هو أسلوب التفاعل المفضل لديك؟", "كيف تفضل التواصل؟", "ما الذي يجعل التفاعل فعالًا؟"},
		Keywords:  []string{"تواصل", "أسلوب", "محادثة", "حوار", "نبرة"},
	},
	{
		Key:       "intervention_level",
		Title:     "🛑 مستوى التدخل",
		Kind:      domain.InputSelect,
		Options:   []string{"استباقي", "تفاعلي", "أدنى (ملاحظ فقط)"},
		Questions: []string{"ما هو مستوى التدخل المفضل؟", "هل تفضل التدخل الاستباقي أم التفاعلي؟", "كيف تتعامل مع النصائح؟"},
		Keywords:  []string{"تدخل", "نصيحة", "استباقي", "توجيه"},
	},
	{
		Key:       "alignment_level",
		Title:     "🔄 مستوى التوافق",
		Kind:      domain.InputText,
		Questions: []string{"ما هو مستوى التوافق الفكري المطلوب؟", "كيف تحقق التوافق مع الأفكار؟", "ما الذي يعزز توافقك؟"},
		Keywords:  []string{"توافق", "اتفاق", "انسجام"},
	},
	{
		Key:       "critique_mechanism",
		Title:     "📝 آلية النقد",
		Kind:      domain.InputText,
		Questions: []string{"كيف تفضل تلقي النقد؟", "ما هي شروط النقد البناء؟", "كيف تستفيد من النقد؟"},
		Keywords:  []string{"نقد", "ملاحظات", "مراجعة"},
	},
	{
		Key:       "prohibitions_warnings",
		Title:     "🚫 المحظورات/التحذيرات",
		Kind:      domain.InputText,
		Questions: []string{"ما هي المحظورات التي تضعها؟", "ما التحذيرات التي تهتم بها؟", "كيف تتجنب المخاطر؟"},
		Keywords:  []string{"محظور", "تحذير", "خطر", "حدود"},
	},
	{
		Key:       "memory_directives",
		Title:     "🧠 توجيهات الذاكرة",
		Kind:      domain.InputText,
		Questions: []string{"كيف تدير ذاكرتك؟", "ما هي توجيهات السياق التي تفضلها؟", "كيف تحتفظ بالمعلومات؟"},
		Keywords:  []string{"ذاكرة", "سياق", "تذكر", "استرجاع"},
	},
	{
		Key:       "cognitive_preference",
		Title:     "🧩 التفضيلات المعرفية",
		Kind:      domain.InputCheckbox,
		Options:   []string{"تحليلي", "إبداعي", "منطقي", "عاطفي", "حدسي", "عملي"},
		Questions: []string{"ما هي تفضيلاتك المعرفية؟", "كيف تؤثر على قراراتك؟", "ما الذي يميز تفكيرك؟"},
		Keywords:  []string{"تفضيل", "إبداع", "تحليلي", "عملي"},
	},
	{
		Key:       "mental_state",
		Title:     "😊 الحالة الذهنية",
		Kind:      domain.InputSelect,
		Options:   []string{"هادئ", "متوتر", "مركز", "مشوش", "متحفز", "محبط"},
		Questions: []string{"كيف تصف حالتك الذهنية؟", "ما الذي يؤثر على تركيزك؟", "كيف تحافظ على سلامتك العقلية؟"},
		Keywords:  []string{"مزاج", "توتر", "تركيز", "هدوء", "تحفيز", "صحة"},
	},
	{
		Key:       "sports_inclinations",
		Title:     "⚽ الميول الرياضية",
		Kind:      domain.InputCheckbox,
		Options:   []string{"كرة القدم", "الجري", "السباحة", "اليوغا", "رياضات قتالية", "لا شيء"},
		Questions: []string{"ما هي ميولك الرياضية؟", "ما الرياضات التي تمارسها؟", "كيف تؤثر الرياضة عليك؟"},
		Keywords:  []string{"رياضة", "تمرين", "لياقة", "تدريب", "جري", "كرة"},
	},
	{
		Key:       "additional_notes",
		Title:     "📝 ملاحظات إضافية",
		Kind:      domain.InputText,
		Questions: []string{"هل لديك ملاحظات إضافية؟", "ما الذي تريد إضافته؟", "هل هناك شيء آخر تود مشاركته؟"},
		Keywords:  []string{"ملاحظات", "إضافة", "أخرى"},
	},
}
