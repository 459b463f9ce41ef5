package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var zhTags = []language.Tag{
	language.SimplifiedChinese,
	language.MustParse("zh-CN"),
	language.Chinese,
}

var zhMessages = map[string]string{
	MsgBaseRequired:       "格式错误，%q 必须以种族值数字开头。",
	MsgNumberOutOfRange:   "数值 %s 超出范围。",
	MsgInvestmentInvalid:  "个体值不合法：'%s'。请输入点数(%d-%d)或总值(%s)。",
	MsgQuickBaseRequired:  "快速模式格式错误: %q 必须以数字开头。",
	MsgQuickRepeatedFlag:  "快速模式格式错误: %q 包含重复的 %q 后缀。",
	MsgQuickUnknownSuffix: "快速模式格式错误: %q 包含无法识别的后缀 %q。",
	MsgQuickPointsInvalid: "快速模式个体值点数 '%s' 不合法，必须为 %d-%d。",
	MsgQuickNotNumber:     "快速模式格式错误: %q 不是整数。",
	MsgMissingPower:       "缺少【威力】参数。",
	MsgMissingDamage:      "缺少【伤害】参数。",
	MsgBlockCount:         "输入错误：未能识别出我方和对方的种族值信息（识别到 %d 个数值，需要 2 个）。",
	MsgRoleConflict:       "输入冲突：无法明确区分我方和对方。",
	MsgVitalityArgs:       "参数不足或格式错误，需要3个数值：种族值、掉血百分比、伤害值。",
	MsgLostPercent:        "掉血百分比必须大于0。",
	MsgVitalityOutOfRange: "估算精力超出范围，请检查伤害值和掉血百分比。",
	MsgDamageArgs:         "需要3个整数：攻击、防御、威力。",
	MsgUnknownSubcommand:  "未知的计算器子指令 %q。",

	ExampleDefense: "我方186+性格 对方80 威力75 130伤害",
	ExampleAttack:  "我方100+性格 对方186 威力75 130伤害",

	MsgInputError:     "参数错误: %s\n\n输入 /%s 帮助 可查看详细帮助。",
	MsgMissingHint:    "%s\n\n输入 /%s 帮助 可查看详细帮助。",
	MsgAmbiguityHint:  "%s\n例如: /%s %s",
	MsgCalcFailed:     "计算出错，请检查您的输入格式是否正确。\n\n输入 /%s 帮助 可查看详细帮助。",
	MsgUnknownCommand: "未知指令: /%s",
	MsgUnknownTopic:   "没有关于 %q 的帮助。\n\n",

	LabelNone:          "完全无养成",
	LabelPlain7:        "无性格+7点个体",
	LabelPlain8:        "无性格+8点个体",
	LabelPlain9:        "无性格+9点个体",
	LabelPlainFull:     "无性格+满个体(10点)",
	LabelPersonality:   "仅性格",
	LabelPersonality7:  "性格+7点个体",
	LabelPersonality8:  "性格+8点个体",
	LabelPersonality9:  "性格+9点个体",
	LabelPersonalityFl: "性格+满个体(10点)",

	MsgStatResult:     "基于 '%s' 计算出的最终能力值为: %d",
	MsgVitalityResult: "基于 '%s' 计算出的最终精力值为: %d",
	MsgDamageResult:   "攻击 %d, 防御 %d, 威力 %d 的最终伤害为: %d",

	MsgDefenseTitle:   "--- 伤害反推(防御)分析 ---",
	MsgDefenseOwn:     "我方攻击: %d (基于 %s)",
	MsgDefenseOppBase: "对方防御种族: %d",
	MsgDefenseDamage:  "实际造成伤害: %d",
	MsgDefenseSimHead: "--- 伤害模拟 (按对方防御从低到高) ---",
	MsgDefenseRow:     "> %-16s (防御: %d) -> 预计伤害: %d",
	MsgDefenseSummary: "您造成的实际伤害为 %d。",
	MsgDefenseLow:     "对方可能完全没有养成，或养成水平极低。",
	MsgDefenseHigh:    "对方养成水平极高，伤害已低于或等于满养成模拟值。",

	MsgAttackTitle:   "--- 伤害反推(攻击)分析 ---",
	MsgAttackOwn:     "我方防御: %d (基于 %s)",
	MsgAttackOppBase: "对方攻击种族: %d",
	MsgAttackDamage:  "实际受到伤害: %d",
	MsgAttackSimHead: "--- 伤害模拟 (按对方攻击从低到高) ---",
	MsgAttackRow:     "> %-16s (攻击: %d) -> 预计伤害: %d",
	MsgAttackSummary: "您受到的实际伤害为 %d。",
	MsgAttackHigh:    "对方养成水平极高，伤害已高于或等于满养成模拟值。",

	MsgSkillPower: "技能威力: %d",
	MsgConclusion: "--- 结论 ---",
	MsgBetween:    "对方的养成情况最可能介于 [%s] 和 [%s] 之间。",

	MsgVitalityTitle:    "--- 精力反推分析 ---",
	MsgVitalityOppBase:  "对方精力种族: %d",
	MsgVitalityLost:     "掉血百分比: %v%%",
	MsgVitalityDamage:   "实际伤害: %d",
	MsgVitalityEstimate: "==> 估算总精力: %d",
	MsgVitalitySimHead:  "--- 精力模拟 (按从低到高) ---",
	MsgVitalityRow:      "> %-16s -> 模拟精力: %d",
	MsgVitalitySummary:  "您的估算总精力为 %d。",
	MsgVitalityLow:      "对方养成水平极低，估算精力(%d)低于最低模拟值(%d)。",
	MsgVitalityHigh:     "对方养成水平极高，估算精力(%d)高于或等于满养成模拟值(%d)。",
	MsgVitalityBetween:  "对方的精力养成情况最可能介于 [%s] 和 [%s] 之间。",

	HelpGeneral: "--- 计算器指令 ---\n\n" +
		"> /能力值计算 : 根据描述计算最终能力值，例如 186+性格+个体10\n" +
		"> /精力计算 : 计算最终精力值，例如 150+性格+个体10\n" +
		"> /伤害计算 : 根据攻击、防御和威力计算伤害，例如 291 148 75\n" +
		"> /计算器 : 以上三个计算指令的指令组，例如 /计算器 能力值计算 186\n" +
		"> /反推 : 反推系列指令总览\n\n" +
		"在指令后加上“帮助”可查看详细用法，例如 /反推防御 帮助",

	HelpStat:     "参数不能为空。用法: /计算器 能力值计算 186+性格+个体10",
	HelpVitality: "参数不能为空。用法: /计算器 精力计算 150+性格+个体10",
	HelpDamage:   "用法: /伤害计算 [攻击] [防御] [威力]\n示例: /伤害计算 291 148 75",

	HelpReverse: "--- 反推指令帮助 ---\n\n" +
		"本插件提供三种反推计算功能：\n\n" +
		"> /反推防御 : 根据你造成的伤害，反推对方的防御能力。\n" +
		"> /反推攻击 : 根据你受到的伤害，反推对方的攻击能力。\n" +
		"> /精力反推 : 根据伤害和掉血百分比，反推对方的精力。\n\n" +
		"要查看具体指令的详细用法，请在指令后加上“帮助”，例如：\n" +
		"/反推防御 帮助",

	HelpReverseDefense: "--- 伤害反推(防御)指令帮助 ---\n\n" +
		"该指令用于根据你造成的伤害，反推对方的防御能力养成。\n\n" +
		"--- 快速模式 ---\n" +
		"格式: /反推防御 [我方攻击信息] [对方防御种族] [威力] [伤害]\n" +
		"我方信息代码: g(个体), x(性格)\n" +
		"示例: /反推防御 186xg8 80 75 130\n\n" +
		"--- 智能模式 ----\n" +
		"说明: 参数顺序随意，通过关键字自动识别。\n" +
		"示例: /反推防御 我方186+性格 对方80 威力75 130伤害",

	HelpReverseAttack: "--- 伤害反推(攻击)指令帮助 ---\n\n" +
		"该指令用于根据你受到的伤害，反推对方的攻击能力养成。\n\n" +
		"--- 快速模式 ---\n" +
		"格式: /反推攻击 [我方防御信息] [对方攻击种族] [威力] [伤害]\n" +
		"示例: /反推攻击 100xg8 186 75 130\n\n" +
		"--- 智能模式 ----\n" +
		"说明: 参数顺序随意，通过关键字自动识别。\n" +
		"示例: /反推攻击 我方100+性格 对方186 威力75 130伤害",

	HelpReverseVitality: "--- 精力反推指令帮助 ---\n\n" +
		"根据造成的伤害和对方掉血百分比，反推其精力养成情况。\n\n" +
		"--- 格式 ---\n" +
		"/精力反推 [对方精力种族] [掉血百分比] [伤害值]\n\n" +
		"--- 快速模式 (无关键字) ---\n" +
		"说明: 按顺序输入3个数字即可。\n" +
		"示例: /精力反推 128 20 102\n" +
		" (对方128精力种族, 掉血20%%, 伤害102)\n\n" +
		"--- 智能模式 (有关键字) ---\n" +
		"说明: 顺序随意，通过关键字识别，更清晰。\n" +
		"关键字: `对方`, `掉血`, `伤害` (`%%`可选)\n" +
		"示例:\n" +
		"  /精力反推 对方128 掉血20%% 伤害102\n" +
		"  /精力反推 伤害102 对方128 掉血20",
}

func init() {
	for _, tag := range zhTags {
		for key, msg := range zhMessages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: register " + tag.String() + ": " + err.Error())
			}
		}
	}
}
