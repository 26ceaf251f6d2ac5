package symblex

// builtinWords is the built-in English word registry: 1468 common words in
// dictionary (alphabetical) order. The slice index of a word is its registry
// index for the lifetime of the process; entries are never reordered, removed,
// or renumbered, because 3-char tokens and suffix-token root references are
// both derived from these positions.
//
// Derived from a frequency-ranked common-English word list, deduplicated,
// lowercased, and sorted. Do not edit by hand without regenerating the
// token fixtures in the package tests.
var builtinWords = []string{
	"abandon", "ability", "able", "aboard", "about", "above", "absence", "absolute", "absorb",
	"abstract", "abuse", "accent", "accept", "acceptance", "accessory", "accident", "accommodate",
	"accomplish", "according", "account", "accuracy", "accurate", "accuse", "ache", "achievement",
	"acid", "acquire", "acre", "across", "act", "action", "active", "activity", "actually", "adapt",
	"add", "addiction", "address", "adequate", "adjust", "administration", "admire", "admission",
	"adopt", "adult", "advance", "adventure", "advertise", "advocate", "affair", "affect",
	"affection", "afford", "afraid", "after", "afternoon", "again", "against", "age", "agency",
	"agenda", "agent", "aggressive", "ago", "agony", "agree", "agreement", "agriculture", "ahead",
	"aid", "aim", "air", "aircraft", "airline", "airport", "aisle", "alarm", "album", "alcohol",
	"alert", "alien", "alike", "alive", "all", "alley", "alliance", "allocate", "allow", "ally",
	"almost", "along", "alongside", "already", "also", "alter", "alternative", "although",
	"altogether", "aluminum", "always", "amateur", "ambition", "ambulance", "amend", "american",
	"amid", "ammunition", "among", "amount", "ample", "amuse", "analysis", "analyst", "anchor",
	"ancient", "and", "anger", "angle", "angry", "animal", "ankle", "anniversary", "announce",
	"annoy", "annual", "anonymous", "another", "answer", "anticipate", "anxiety", "anxious", "any",
	"anyone", "anything", "anyway", "anywhere", "apart", "apartment", "apology", "apparatus",
	"apparent", "appeal", "appear", "appearance", "appetite", "applaud", "apple", "appliance",
	"applicant", "application", "apply", "appointment", "appreciate", "approach", "appropriate",
	"approval", "approximate", "apron", "arch", "architect", "archive", "are", "area", "arena",
	"argue", "argument", "arise", "arithmetic", "arm", "armchair", "armor", "around", "arrange",
	"arrest", "arrival", "arrow", "art", "article", "artificial", "artist", "as", "ash", "ashamed",
	"aside", "ask", "asleep", "aspect", "assault", "assemble", "assess", "asset", "assign", "assist",
	"assume", "assure", "astonish", "at", "attack", "attention", "audience", "author", "authority",
	"available", "avoid", "away", "baby", "back", "bad", "bag", "ball", "bank", "bar", "base", "bay",
	"be", "beat", "beautiful", "because", "become", "bed", "been", "before", "begin", "behavior",
	"behind", "believe", "benefit", "best", "better", "between", "beyond", "big", "bill", "billion",
	"bit", "black", "blood", "blue", "board", "body", "book", "both", "box", "boy", "break", "bring",
	"brother", "budget", "build", "building", "bus", "business", "busy", "but", "buy", "by", "call",
	"camera", "campaign", "can", "candidate", "cannot", "cap", "capital", "car", "card", "care",
	"career", "carry", "case", "cat", "catch", "category", "cause", "cell", "center", "central",
	"century", "certain", "certainly", "chair", "challenge", "chance", "change", "character",
	"charge", "check", "child", "choice", "choose", "church", "citizen", "city", "civil", "claim",
	"class", "clear", "clearly", "close", "coach", "code", "cold", "collection", "college", "color",
	"come", "comment", "common", "company", "compare", "computer", "concern", "condition",
	"conference", "confirm", "connection", "consider", "consumer", "contain", "continue", "control",
	"copy", "cost", "could", "country", "couple", "course", "court", "cover", "create", "crime",
	"cry", "cultural", "culture", "cup", "current", "cut", "dad", "danger", "dark", "data",
	"daughter", "day", "dead", "deal", "death", "debate", "decade", "decide", "decision", "deep",
	"defense", "define", "degree", "describe", "design", "despite", "detail", "determine", "develop",
	"development", "device", "die", "difference", "different", "difficult", "dinner", "direction",
	"director", "discover", "discuss", "discussion", "disease", "do", "doctor", "document", "dog",
	"done", "door", "down", "draw", "dream", "drink", "drive", "drop", "drug", "dry", "due",
	"during", "each", "early", "east", "easy", "eat", "economic", "economy", "edge", "education",
	"effect", "effort", "egg", "eight", "either", "election", "else", "employee", "end", "energy",
	"enjoy", "enough", "enter", "entire", "environment", "environmental", "equal", "error",
	"especially", "establish", "even", "evening", "event", "ever", "every", "everybody", "everyone",
	"everything", "everywhere", "evidence", "exactly", "example", "executive", "exist", "expect",
	"experience", "explain", "eye", "eyes", "face", "fact", "factor", "fail", "fall", "family",
	"fan", "far", "fat", "father", "fear", "feel", "feeling", "few", "field", "fight", "figure",
	"fill", "film", "final", "finally", "find", "fine", "finger", "finish", "fire", "firm", "first",
	"fish", "fit", "five", "fix", "floor", "focus", "follow", "food", "foot", "for", "force",
	"foreign", "forget", "form", "former", "forward", "four", "free", "freedom", "freeze", "freight",
	"frequent", "fresh", "friction", "fridge", "friend", "fright", "fringe", "frog", "from", "front",
	"frontier", "frost", "frown", "frozen", "fruit", "frustrate", "fry", "fuel", "fulfill", "full",
	"fun", "function", "fund", "funeral", "funnel", "fur", "furnace", "furnish", "furniture", "fury",
	"fuse", "fuss", "future", "gain", "galaxy", "gallery", "gallon", "gamble", "game", "gap",
	"garage", "garbage", "garden", "garlic", "garment", "gas", "gate", "gather", "gauge", "gaze",
	"gear", "gem", "gender", "gene", "general", "generate", "generation", "generous", "genius",
	"gentle", "genuine", "geography", "geometry", "germ", "gesture", "get", "ghost", "giant", "gift",
	"giggle", "ginger", "girl", "give", "glad", "glance", "gland", "glare", "glass", "glide",
	"glimpse", "glitter", "globe", "gloom", "glory", "glove", "glow", "glue", "go", "goal", "goat",
	"going", "gold", "golden", "golf", "good", "goodness", "goods", "goose", "gorgeous", "gossip",
	"govern", "gown", "grab", "grace", "grade", "gradual", "graduate", "grain", "grammar", "grand",
	"grant", "grape", "grasp", "grass", "grateful", "grave", "gravity", "graze", "grease", "great",
	"green", "greet", "grief", "grind", "grip", "groan", "grocery", "groom", "groove", "gross",
	"ground", "group", "grow", "growth", "guarantee", "guard", "guess", "guest", "guide", "guilt",
	"guitar", "gulf", "gum", "gun", "gut", "guy", "gym", "habit", "had", "hail", "hair", "half",
	"hall", "halt", "hammer", "hand", "handful", "handle", "handsome", "hang", "happen", "happy",
	"harbor", "hard", "hardship", "hardware", "harm", "harmony", "harsh", "harvest", "has", "haste",
	"hat", "hatch", "hate", "haul", "have", "hawk", "hay", "hazard", "he", "head", "heal", "health",
	"heap", "hear", "hearing", "heart", "heat", "heaven", "heavy", "hedge", "heel", "height", "heir",
	"hell", "helmet", "help", "hen", "hence", "her", "herb", "herd", "here", "herself", "hesitate",
	"hide", "high", "higher", "hill", "him", "himself", "hint", "hip", "hire", "his", "history",
	"hit", "hive", "hobby", "hold", "hole", "holiday", "hollow", "holy", "home", "honest", "honey",
	"honor", "hook", "hop", "hope", "horizon", "horn", "horror", "horse", "hose", "hospital", "host",
	"hostile", "hot", "hotel", "hound", "hour", "house", "how", "however", "hug", "huge", "human",
	"humble", "humor", "hundred", "hunger", "hunt", "hurl", "hurry", "hurt", "husband", "hut",
	"hydrogen", "hymn", "ice", "idea", "ideal", "identical", "identify", "idle", "idol", "if",
	"ignorant", "ignore", "ill", "illusion", "illustrate", "image", "imagine", "imitate", "immense",
	"immigrant", "immune", "impact", "imply", "import", "important", "impose", "impress", "improve",
	"impulse", "in", "inch", "incident", "incline", "include", "including", "increase", "indeed",
	"indicate", "individual", "indoor", "induce", "indulge", "industry", "infant", "infect",
	"inferior", "inflate", "inflict", "influence", "inform", "information", "inherit", "initial",
	"initiative", "inject", "injure", "injury", "ink", "inn", "inner", "innocent", "input",
	"inquire", "insect", "insert", "inside", "insist", "inspect", "inspire", "install", "instant",
	"instead", "instinct", "institute", "instruct", "interest", "interesting", "interview", "into",
	"involve", "is", "issue", "it", "item", "its", "itself", "job", "join", "just", "keep", "key",
	"kid", "kill", "kind", "know", "known", "land", "language", "large", "last", "late", "later",
	"laugh", "law", "lawyer", "lead", "leader", "leaf", "learn", "least", "leave", "left", "legal",
	"less", "let", "letter", "level", "lie", "life", "light", "like", "likely", "line", "link",
	"lip", "list", "listen", "little", "live", "local", "log", "long", "look", "lose", "loss", "lot",
	"love", "low", "lower", "machine", "mad", "made", "mail", "main", "maintain", "major", "make",
	"man", "manage", "management", "manager", "many", "map", "market", "marriage", "match",
	"material", "matter", "may", "maybe", "mean", "measure", "media", "medical", "meet", "meeting",
	"member", "memory", "mention", "message", "method", "middle", "might", "military", "million",
	"mind", "minute", "miss", "mix", "model", "modern", "mom", "moment", "money", "month", "more",
	"morning", "most", "mother", "mouth", "move", "movement", "movie", "much", "music", "must", "my",
	"myself", "name", "national", "natural", "nature", "near", "nearly", "necessary", "need",
	"network", "never", "new", "news", "newspaper", "next", "nice", "night", "no", "none", "nor",
	"normal", "not", "note", "nothing", "notice", "now", "number", "occur", "of", "off", "offer",
	"office", "officer", "official", "often", "oil", "old", "on", "once", "one", "online", "only",
	"onto", "open", "operation", "opportunity", "or", "order", "organization", "other", "others",
	"our", "out", "outside", "over", "own", "owner", "page", "pain", "paper", "parent", "part",
	"particular", "particularly", "partner", "party", "pass", "past", "pay", "peace", "people",
	"perform", "performance", "perhaps", "period", "person", "personal", "pet", "phone", "pick",
	"picture", "piece", "place", "plan", "plant", "play", "player", "plenty", "point", "police",
	"policy", "poor", "popular", "population", "position", "positive", "possible", "power",
	"practice", "prepare", "present", "pressure", "pretty", "prevent", "price", "priority",
	"private", "probably", "problem", "process", "produce", "product", "production", "program",
	"progress", "project", "property", "protect", "prove", "provide", "public", "pull", "purpose",
	"push", "put", "quality", "question", "quickly", "quite", "race", "radio", "raise", "range",
	"rate", "rather", "reach", "read", "ready", "real", "reality", "realize", "really", "reason",
	"receive", "recent", "recently", "recognize", "record", "red", "reduce", "reflect", "region",
	"relate", "relationship", "remain", "remember", "remove", "reply", "report", "represent",
	"republican", "require", "research", "resource", "respect", "respond", "response", "rest",
	"result", "return", "reveal", "rich", "right", "rise", "risk", "road", "rock", "role", "room",
	"row", "rule", "run", "sad", "safe", "said", "same", "save", "say", "scene", "school", "science",
	"score", "sea", "season", "seat", "second", "section", "security", "see", "seek", "seem", "seen",
	"sell", "send", "sense", "series", "serious", "serve", "service", "set", "seven", "several",
	"shake", "share", "she", "shoot", "short", "shot", "should", "show", "side", "sign",
	"significant", "silence", "similar", "simple", "simply", "since", "sing", "single", "sir",
	"sister", "sit", "site", "situation", "six", "size", "skill", "skin", "small", "smile", "so",
	"social", "software", "soldier", "solid", "some", "somebody", "someone", "something",
	"sometimes", "somewhere", "son", "song", "soon", "sort", "sound", "source", "south", "space",
	"speak", "special", "specific", "speed", "spend", "sport", "spring", "staff", "stage", "stand",
	"standard", "star", "start", "state", "statement", "station", "stay", "step", "still", "stock",
	"stop", "store", "story", "straight", "strategy", "street", "strong", "student", "study",
	"stuff", "style", "subject", "success", "such", "suddenly", "suggest", "sum", "summer", "sun",
	"support", "sure", "system", "table", "take", "talk", "task", "tea", "teach", "teacher", "team",
	"technology", "television", "tell", "ten", "tend", "term", "test", "text", "than", "thank",
	"that", "the", "their", "them", "themselves", "then", "theory", "there", "these", "they",
	"thing", "think", "third", "this", "those", "though", "thought", "thousand", "threat", "three",
	"through", "throughout", "throw", "thus", "tie", "time", "title", "to", "today", "together",
	"tolerate", "toll", "tomato", "tomb", "tomorrow", "ton", "tone", "tongue", "tonight", "too",
	"tool", "tooth", "top", "total", "tough", "toward", "towel", "tower", "town", "toxic", "toy",
	"trace", "track", "tractor", "trade", "traditional", "tragedy", "trail", "train", "training",
	"trait", "traitor", "tramp", "transfer", "transform", "transit", "translate", "transmit",
	"transparent", "transport", "trap", "travel", "tray", "tread", "treason", "treasure", "treat",
	"treatment", "treaty", "tree", "tremble", "tremendous", "trench", "trend", "trial", "triangle",
	"tribe", "tribute", "trick", "trifle", "trim", "trip", "triumph", "trolley", "troop", "trophy",
	"tropical", "trot", "trouble", "trousers", "truck", "true", "trumpet", "trunk", "trust", "truth",
	"try", "tub", "turn", "two", "type", "under", "understand", "unit", "united", "until", "up",
	"upon", "us", "use", "usually", "value", "van", "various", "very", "victim", "view", "violence",
	"visit", "voice", "vote", "wait", "walk", "wall", "want", "war", "warm", "was", "watch", "water",
	"way", "we", "weapon", "wear", "web", "week", "weight", "well", "went", "were", "west", "wet",
	"what", "whatever", "when", "where", "whether", "which", "while", "white", "who", "whole",
	"whom", "whose", "why", "wide", "wife", "will", "win", "window", "wish", "with", "within",
	"without", "woman", "wonder", "word", "work", "worker", "working", "workout", "workshop",
	"world", "worm", "worry", "worse", "worship", "worst", "worth", "worthy", "would", "wound",
	"wrap", "wrest", "write", "writer", "wrong", "yard", "year", "yes", "yet", "you", "young",
	"your", "yourself",
}
