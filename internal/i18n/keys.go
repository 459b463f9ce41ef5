package i18n

// Message keys. Keys are the English format strings; the catalogs in this
// package translate them. Keys that are printed through a Printer must escape
// literal percent signs as %%.

// Input errors.
const (
	MsgBaseRequired       = "%q must start with a base value"
	MsgNumberOutOfRange   = "number %s is out of range"
	MsgInvestmentInvalid  = "invalid investment %s: enter points (%d-%d) or a total (%s)"
	MsgQuickBaseRequired  = "quick mode: %q must start with digits"
	MsgQuickRepeatedFlag  = "quick mode: %q repeats the %q suffix"
	MsgQuickUnknownSuffix = "quick mode: %q has an unrecognized suffix %q"
	MsgQuickPointsInvalid = "quick mode: investment points %s are invalid, must be %d-%d"
	MsgQuickNotNumber     = "quick mode: %q is not a whole number"
	MsgMissingPower       = "missing the power parameter"
	MsgMissingDamage      = "missing the damage parameter"
	MsgBlockCount         = "could not find my stat value and the opponent's: found %d value(s), expected 2"
	MsgRoleConflict       = "conflicting input: cannot tell which value is mine and which is the opponent's"
	MsgVitalityArgs       = "not enough parameters: need 3 numbers (base value, lost percent, damage)"
	MsgLostPercent        = "lost percent must be greater than 0"
	MsgVitalityOutOfRange = "estimated vitality is out of range: check the damage and lost percent"
	MsgDamageArgs         = "need 3 whole numbers: attack, defense, power"
	MsgUnknownSubcommand  = "unknown calc subcommand %q"
)

// Unambiguous phrasings shown with ambiguity errors.
const (
	ExampleDefense = "my-side186+personality opponent-side80 power75 130damage"
	ExampleAttack  = "my-side100+personality opponent-side186 power75 130damage"
)

// Host replies.
const (
	MsgInputError     = "Input error: %s\n\nType /%s help for details."
	MsgMissingHint    = "%s\n\nType /%s help for details."
	MsgAmbiguityHint  = "%s\nFor example: /%s %s"
	MsgCalcFailed     = "Calculation failed, please check your input.\n\nType /%s help for details."
	MsgUnknownCommand = "Unknown command: /%s"
	MsgUnknownTopic   = "No help for %q.\n\n"
)

// Scenario labels.
const (
	LabelNone          = "No investment"
	LabelPlain7        = "No personality + 7 pts"
	LabelPlain8        = "No personality + 8 pts"
	LabelPlain9        = "No personality + 9 pts"
	LabelPlainFull     = "No personality + full (10 pts)"
	LabelPersonality   = "Personality only"
	LabelPersonality7  = "Personality + 7 pts"
	LabelPersonality8  = "Personality + 8 pts"
	LabelPersonality9  = "Personality + 9 pts"
	LabelPersonalityFl = "Personality + full (10 pts)"
)

// Plain calculator results.
const (
	MsgStatResult     = "Final stat for '%s': %d"
	MsgVitalityResult = "Final vitality for '%s': %d"
	MsgDamageResult   = "Attack %d, defense %d, power %d: final damage %d"
)

// Reverse reports.
const (
	MsgDefenseTitle   = "--- Damage reverse (defense) analysis ---"
	MsgDefenseOwn     = "My attack: %d (from %s)"
	MsgDefenseOppBase = "Opponent defense base: %d"
	MsgDefenseDamage  = "Actual damage dealt: %d"
	MsgDefenseSimHead = "--- Damage simulation (opponent defense, low to high) ---"
	MsgDefenseRow     = "> %-16s (defense: %d) -> expected damage: %d"
	MsgDefenseSummary = "You dealt %d damage."
	MsgDefenseLow     = "The opponent probably has no investment, or very little."
	MsgDefenseHigh    = "The opponent is heavily invested: damage is at or below the fully invested simulation."

	MsgAttackTitle   = "--- Damage reverse (attack) analysis ---"
	MsgAttackOwn     = "My defense: %d (from %s)"
	MsgAttackOppBase = "Opponent attack base: %d"
	MsgAttackDamage  = "Actual damage taken: %d"
	MsgAttackSimHead = "--- Damage simulation (opponent attack, low to high) ---"
	MsgAttackRow     = "> %-16s (attack: %d) -> expected damage: %d"
	MsgAttackSummary = "You took %d damage."
	MsgAttackLow     = "The opponent probably has no investment, or very little."
	MsgAttackHigh    = "The opponent is heavily invested: damage is at or above the fully invested simulation."

	MsgSkillPower = "Skill power: %d"
	MsgConclusion = "--- Conclusion ---"
	MsgBetween    = "The opponent's investment most likely lies between [%s] and [%s]."

	MsgVitalityTitle    = "--- Vitality reverse analysis ---"
	MsgVitalityOppBase  = "Opponent vitality base: %d"
	MsgVitalityLost     = "Lost percent: %v%%"
	MsgVitalityDamage   = "Actual damage: %d"
	MsgVitalityEstimate = "==> Estimated total vitality: %d"
	MsgVitalitySimHead  = "--- Vitality simulation (low to high) ---"
	MsgVitalityRow      = "> %-16s -> simulated vitality: %d"
	MsgVitalitySummary  = "Your estimated total vitality is %d."
	MsgVitalityLow      = "The opponent is barely invested: estimated vitality (%d) is below the lowest simulation (%d)."
	MsgVitalityHigh     = "The opponent is heavily invested: estimated vitality (%d) is at or above the fully invested simulation (%d)."
	MsgVitalityBetween  = "The opponent's vitality investment most likely lies between [%s] and [%s]."
)

// Help texts.
const (
	HelpGeneral = "--- Calculator commands ---\n\n" +
		"> /stat-calc : final stat from a description, e.g. 186+personality+investment10\n" +
		"> /vitality-calc : final vitality, e.g. 150+personality+investment10\n" +
		"> /damage-calc : damage from attack, defense and power, e.g. 291 148 75\n" +
		"> /calc : the three calculators as one group, e.g. /calc stat-calc 186\n" +
		"> /reverse : overview of the reverse analysis commands\n\n" +
		"Add \"help\" after a command for details, e.g. /reverse-defense help"

	HelpStat     = "Parameters cannot be empty. Usage: /stat-calc 186+personality+investment10"
	HelpVitality = "Parameters cannot be empty. Usage: /vitality-calc 150+personality+investment10"
	HelpDamage   = "Usage: /damage-calc [attack] [defense] [power]\nExample: /damage-calc 291 148 75"

	HelpReverse = "--- Reverse commands ---\n\n" +
		"Three reverse analyses are available:\n\n" +
		"> /reverse-defense : infer the opponent's defense investment from the damage you dealt.\n" +
		"> /reverse-attack : infer the opponent's attack investment from the damage you took.\n" +
		"> /vitality-reverse : infer the opponent's vitality from damage and lost percent.\n\n" +
		"Add \"help\" after a command for details, e.g.\n" +
		"/reverse-defense help"

	HelpReverseDefense = "--- Damage reverse (defense) help ---\n\n" +
		"Infers the opponent's defense investment from the damage you dealt.\n\n" +
		"--- Quick mode ---\n" +
		"Format: /reverse-defense [my attack] [opponent defense base] [power] [damage]\n" +
		"My attack suffixes: g (investment), x (no personality)\n" +
		"Example: /reverse-defense 186xg8 80 75 130\n\n" +
		"--- Smart mode ---\n" +
		"Parameters in any order, recognized by keyword.\n" +
		"Example: /reverse-defense my-side186+personality opponent-side80 power75 130damage"

	HelpReverseAttack = "--- Damage reverse (attack) help ---\n\n" +
		"Infers the opponent's attack investment from the damage you took.\n\n" +
		"--- Quick mode ---\n" +
		"Format: /reverse-attack [my defense] [opponent attack base] [power] [damage]\n" +
		"Example: /reverse-attack 100xg8 186 75 130\n\n" +
		"--- Smart mode ---\n" +
		"Parameters in any order, recognized by keyword.\n" +
		"Example: /reverse-attack my-side100+personality opponent-side186 power75 130damage"

	HelpReverseVitality = "--- Vitality reverse help ---\n\n" +
		"Infers the opponent's vitality investment from the damage dealt and the percent of vitality lost.\n\n" +
		"--- Format ---\n" +
		"/vitality-reverse [opponent vitality base] [lost percent] [damage]\n\n" +
		"--- Quick mode (no keywords) ---\n" +
		"Enter the 3 numbers in order.\n" +
		"Example: /vitality-reverse 128 20 102\n" +
		" (opponent base 128, lost 20%%, damage 102)\n\n" +
		"--- Smart mode (keywords) ---\n" +
		"Any order, recognized by keyword.\n" +
		"Keywords: opponent-side, lost, damage (%% optional)\n" +
		"Examples:\n" +
		"  /vitality-reverse opponent-side128 lost20%% damage102\n" +
		"  /vitality-reverse damage102 opponent-side128 lost20"
)
