package bank

import "github.com/hypatia-cli/hypatia/internal/domain"

var englishCategories = []domain.Category{
	{
		Key:       "personal_data",
		Title:     "👤 Personal Data",
		Kind:      domain.InputText,
		Questions: []string{"What is your name?", "What is your date of birth?", "What is your nationality?", "What languages do you speak?"},
		Keywords:  []string{"name", "birth", "birthday", "nationality", "language", "identity"},
	},
	{
		Key:       "social_status",
		Title:     "👥 Social Status",
		Kind:      domain.InputSelect,
		Options:   []string{"Single", "Married", "Divorced", "Widowed"},
		Questions: []string{"What is your social status?", "How would you describe your familial relationships?", "What are the most important relationships in your life?"},
		Keywords:  []string{"family", "marriage", "married", "relationship", "friends", "social"},
	},
	{
		Key:       "edu_prof_background",
		Title:     "🎓 Educational/Professional Background",
		Kind:      domain.InputText,
		Questions: []string{"What field of study did you pursue?", "What certifications have you obtained?", "What are your professional experiences?", "What are your key skills?"},
		Keywords:  []string{"education", "study", "degree", "university", "career", "profession", "skill", "work"},
	},
	{
		Key:       "thinking_reference",
		Title:     "💭 Thinking Reference",
		Kind:      domain.InputSelect,
		Options:   []string{"Rational", "Intuitive", "Religious", "Empirical"},
		Questions: []string{"What is your thinking reference?", "Do you prefer rational or intuitive thinking?", "What shapes your thoughts?"},
		Keywords:  []string{"thinking", "rational", "intuition", "reason", "logic", "belief"},
	},
	{
		Key:       "cognitive_passion",
		Title:     "🔥 Cognitive Passion",
		Kind:      domain.InputText,
		Questions: []string{"What is your cognitive passion?", "How do you explore your intellectual interests?", "What inspires you to learn?", "What fields do you love to explore?"},
		Keywords:  []string{"passion", "curiosity", "learning", "interest", "explore", "knowledge"},
	},
	{
		Key:       "ethical_values",
		Title:     "⚖️ Ethical Values",
		Kind:      domain.InputCheckbox,
		Options:   []string{"Justice", "Honesty", "Compassion", "Respect", "Integrity", "Responsibility"},
		Questions: []string{"What are your most important ethical values?", "How do you apply your values in your life?", "What distinguishes your ethics?"},
		Keywords:  []string{"ethics", "values", "justice", "honesty", "integrity", "moral"},
	},
	{
		Key:       "core_concepts_perspective",
		Title:     "🌍 Core Concepts Perspective",
		Kind:      domain.InputText,
		Questions: []string{"What core concepts do you believe in?", "How do you interpret freedom?", "What is the concept of beauty to you?", "What is truth in your view?"},
		Keywords:  []string{"freedom", "truth", "beauty", "meaning", "concept", "perspective"},
	},
	{
		Key:       "cognitive_tools",
		Title:     "🛠️ Cognitive Tools",
		Kind:      domain.InputText,
		Questions: []string{"What cognitive tools do you use?", "How do you use logic in your decisions?", "What thinking methods do you prefer?"},
		Keywords:  []string{"tools", "method", "logic", "analysis", "reasoning"},
	},
	{
		Key:       "inspiring_figures",
		Title:     "🌟 Inspiring Figures",
		Kind:      domain.InputText,
		Questions: []string{"Who is an inspiring figure to you?", "Why is this person influential?", "How have they impacted you?"},
		Keywords:  []string{"inspiration", "mentor", "hero", "figure", "influence"},
	},
	{
		Key:       "intellectual_sins",
		Title:     "⚠️ Intellectual Sins",
		Kind:      domain.InputCheckbox,
		Options:   []string{"Confirmation Bias", "Dogmatism", "Groupthink", "Oversimplification", "Hasty Generalization"},
		Questions: []string{"What intellectual biases do you avoid?", "How do you deal with dogmatism?", "What are common thinking errors?"},
		Keywords:  []string{"bias", "fallacy", "dogma", "error", "generalization"},
	},
	{
		Key:       "project_objective",
		Title:     "📈 Project/Objective",
		Kind:      domain.InputText,
		Questions: []string{"What is your current project?", "What are your professional goals?", "What do you want to achieve in five years?", "How do you plan your project?"},
		Keywords:  []string{"project", "goal", "objective", "plan", "ambition", "achieve"},
	},
	{
		Key:       "pivotal_example",
		Title:     "📖 Pivotal Example",
		Kind:      domain.InputText,
		Questions: []string{"What is a pivotal example that impacted you?", "How did this example shape your thinking?", "What story would you like to share?"},
		Keywords:  []string{"story", "example", "experience", "lesson", "moment"},
	},
	{
		Key:       "causal_relations",
		Title:     "🔗 Causal Relations",
		Kind:      domain.InputText,
		Questions: []string{"What causal relationship do you see between ideas?", "How do you connect concepts?", "What influences your decisions?"},
		Keywords:  []string{"cause", "effect", "connection", "relation", "consequence"},
	},
	{
		Key:       "llm_persona",
		Title:     "🤖 Model Persona",
		Kind:      domain.InputSelect,
		Options:   []string{"Analytical Assistant", "Friendly Advisor", "Teacher", "Critical Thinker", "Curious Explorer"},
		Questions: []string{"What is the preferred role for the model?", "How do you want the model to assist you?", "What is the ideal model persona?"},
		Keywords:  []string{"assistant", "persona", "role", "advisor", "model"},
	},
	{
		Key:       "conceptual_tuning",
		Title:     "⚙️ Conceptual Tuning",
		Kind:      domain.InputText,
		Questions: []string{"What specific terms do you use?", "How do you define your concepts?", "What distinguishes your intellectual language?"},
		Keywords:  []string{"terminology", "definition", "vocabulary", "precision"},
	},
	{
		Key:       "interaction_style",
		Title:     "💬 Interaction Style",
		Kind:      domain.InputSelect,
		Options:   []string{"Analytical", "Friendly", "Concise", "Detailed", "Socratic"},
		Questions: []string{"What is your preferred interaction style?", "How do you like to communicate?", "What makes interaction effective?"},
		Keywords:  []string{"communication", "style", "conversation", "dialogue", "tone"},
	},
	{
		Key:       "intervention_level",
		Title:     "🛑 Intervention Level",
		Kind:      domain.InputSelect,
		Options:   []string{"Proactive", "Reactive", "Minimal (Observational)"},
		Questions: []string{"What is your preferred intervention level?", "Do you prefer proactive or reactive intervention?", "How do you handle advice?"},
		Keywords:  []string{"intervention", "advice", "proactive", "guidance"},
	},
	{
		Key:       "alignment_level",
		Title:     "🔄 Alignment Level",
		Kind:      domain.InputText,
		Questions: []string{"What is the required intellectual alignment level?", "How do you achieve alignment with ideas?", "What enhances your alignment?"},
		Keywords:  []string{"alignment", "agreement", "harmony"},
	},
	{
		Key:       "critique_mechanism",
		Title:     "📝 Critique Mechanism",
		Kind:      domain.InputText,
		Questions: []string{"How do you prefer to receive criticism?", "What are the conditions for constructive criticism?", "How do you benefit from criticism?"},
		Keywords:  []string{"criticism", "critique", "feedback", "review"},
	},
	{
		Key:       "prohibitions_warnings",
		Title:     "🚫 Prohibitions/Warnings",
		Kind:      domain.InputText,
		Questions: []string{"What prohibitions do you set?", "What warnings are you concerned about?", "How do you avoid risks?"},
		Keywords:  []string{"prohibition", "warning", "risk", "limit", "boundary"},
	},
	{
		Key:       "memory_directives",
		Title:     "🧠 Memory Directives",
		Kind:      domain.InputText,
		Questions: []string{"How do you manage your memory?", "What context directives do you prefer?", "How do you retain information?"},
		Keywords:  []string{"memory", "context", "recall", "remember", "retention"},
	},
	{
		Key:       "cognitive_preference",
		Title:     "🧩 Cognitive Preferences",
		Kind:      domain.InputCheckbox,
		Options:   []string{"Analytical", "Creative", "Logical", "Emotional", "Intuitive", "Practical"},
		Questions: []string{"What are your cognitive preferences?", "How do they affect your decisions?", "What distinguishes your thinking?"},
		Keywords:  []string{"preference", "creative", "analytical", "practical", "style"},
	},
	{
		Key:       "mental_state",
		Title:     "😊 Mental State",
		Kind:      domain.InputSelect,
		Options:   []string{"Calm", "Stressed", "Focused", "Confused", "Motivated", "Frustrated"},
		Questions: []string{"How do you describe your mental state?", "What affects your focus?", "How do you maintain mental health?"},
		Keywords:  []string{"mood", "stress", "focus", "calm", "motivation", "health"},
	},
	{
		Key:       "sports_inclinations",
		Title:     "⚽ Sports Inclinations",
		Kind:      domain.InputCheckbox,
		Options:   []string{"Football", "Running", "Swimming", "Yoga", "Martial Arts", "None"},
		Questions: []string{"What are your sports inclinations?", "What sports do you practice?", "How does sport affect you?"},
		Keywords:  []string{"sport", "exercise", "fitness", "training", "running", "football"},
	},
	{
		Key:       "additional_notes",
		Title:     "📝 Additional Notes",
		Kind:      domain.InputText,
		Questions: []string{"Do you have additional notes?", "What would you like to add?", "Is there anything else you'd like to share?"},
		Keywords:  []string{"notes", "extra", "other", "miscellaneous"},
	},
}
