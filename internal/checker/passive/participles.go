package passive

// DefaultParticiples is the fixed inventory of irregular English past
// participles checked after a to-be verb. Regular "-ed" forms are not
// listed; matching them wholesale would drown the report in adjectival
// false positives.
var DefaultParticiples = []string{
	"arisen", "awoken", "beaten", "become", "been", "befallen",
	"begotten", "begun", "bent", "bereft", "beset", "besought", "bet",
	"bid", "bidden", "bitten", "bled", "blessed", "blown", "born",
	"borne", "bought", "bound", "bred", "broadcast", "broken",
	"brought", "built", "burnt", "burst", "cast", "caught", "chosen",
	"clad", "clung", "come", "cost", "crept", "cut", "dealt", "dived",
	"done", "drawn", "dreamt", "driven", "drunk", "dug", "dwelt",
	"eaten", "fallen", "fed", "felt", "fit", "fled", "flown", "flung",
	"forbidden", "forecast", "foregone", "foreseen", "foretold",
	"forgiven", "forgotten", "forsaken", "fought", "found", "frozen",
	"given", "gone", "gotten", "ground", "grown", "heard", "held",
	"hewn", "hidden", "hit", "hung", "hurt", "inlaid", "input", "kept",
	"knelt", "knit", "known", "laid", "lain", "leant", "leapt",
	"learnt", "led", "left", "lent", "let", "lighted", "lit", "lost",
	"made", "meant", "met", "misled", "misspelt", "mistaken",
	"misunderstood", "mown", "outdone", "outgrown", "overcome",
	"overdone", "overdrawn", "overheard", "overridden", "overseen",
	"overtaken", "overthrown", "paid", "partaken", "pled", "proven",
	"put", "quit", "read", "rebuilt", "redone", "remade", "rent",
	"repaid", "rethought", "rewritten", "rid", "ridden", "risen",
	"run", "rung", "said", "sat", "sawn", "seen", "sent", "set",
	"sewn", "shaken", "shaven", "shed", "shod", "shone", "shorn",
	"shot", "shown", "shrunk", "shut", "slain", "slept", "slid",
	"slit", "slung", "smitten", "sold", "sought", "sown", "spat",
	"sped", "spelt", "spent", "spilt", "split", "spoilt", "spoken",
	"spread", "sprung", "spun", "stolen", "stood", "stridden",
	"striven", "struck", "strung", "stuck", "stung", "stunk",
	"sublet", "sung", "sunk", "swept", "swollen", "sworn", "swum",
	"swung", "taken", "taught", "thought", "thriven", "thrown",
	"thrust", "told", "torn", "trodden", "typeset", "undergone",
	"understood", "undertaken", "undone", "upheld", "upset", "wed",
	"wept", "wet", "withdrawn", "withheld", "withstood", "woken",
	"won", "worn", "wound", "woven", "written", "wrung",
}
