package calc

import (
	"strings"

	"github.com/udisondev/growthcalc/internal/i18n"
)

// Topic names a help text.
type Topic string

const (
	TopicGeneral         Topic = "general"
	TopicStat            Topic = "stat-calc"
	TopicVitality        Topic = "vitality-calc"
	TopicDamage          Topic = "damage-calc"
	TopicReverse         Topic = "reverse"
	TopicReverseDefense  Topic = "reverse-defense"
	TopicReverseAttack   Topic = "reverse-attack"
	TopicReverseVitality Topic = "vitality-reverse"
)

var helpKeys = map[Topic]string{
	TopicGeneral:         i18n.HelpGeneral,
	TopicStat:            i18n.HelpStat,
	TopicVitality:        i18n.HelpVitality,
	TopicDamage:          i18n.HelpDamage,
	TopicReverse:         i18n.HelpReverse,
	TopicReverseDefense:  i18n.HelpReverseDefense,
	TopicReverseAttack:   i18n.HelpReverseAttack,
	TopicReverseVitality: i18n.HelpReverseVitality,
}

// Topics returns every help topic.
func Topics() []Topic {
	return []Topic{
		TopicGeneral, TopicStat, TopicVitality, TopicDamage,
		TopicReverse, TopicReverseDefense, TopicReverseAttack, TopicReverseVitality,
	}
}

// HelpText returns the help for topic. Unknown topics get a notice followed
// by the general help.
func (c *Calculator) HelpText(topic Topic) string {
	if key, ok := helpKeys[Topic(strings.ToLower(strings.TrimSpace(string(topic))))]; ok {
		return c.render.Help(key)
	}
	p := c.render.Printer()
	return p.Sprintf(i18n.MsgUnknownTopic, string(topic)) + c.render.Help(i18n.HelpGeneral)
}
