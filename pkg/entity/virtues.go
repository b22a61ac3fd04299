package entity

// VirtueCount is the number of virtues tracked on every record.
const VirtueCount = 13

type VirtueDefinition struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Description string   `json:"desc"`
	Tips        []string `json:"tips"`
}

var virtueCatalog = [VirtueCount]VirtueDefinition{
	{0, "Temperance", "Eat not to dullness; drink not to elevation.", []string{
		"Stop eating when you are about seventy percent full",
		"Avoid drinking to excess and stay clear-headed",
		"Practice restraint over passing appetites",
		"Ask whether you really need something before buying it",
	}},
	{1, "Silence", "Speak not but what may benefit others or yourself; avoid trifling conversation.", []string{
		"Think before speaking about whether it needs to be said",
		"Stay out of gossip and negative talk",
		"Listen more than you speak",
		"Use silence to avoid needless conflict",
	}},
	{2, "Order", "Let all your things have their places; let each part of your business have its time.", []string{
		"Keep your workspace clean and organized",
		"Plan the day and follow the plan",
		"Give every item a fixed place",
		"Finish promised tasks on time",
	}},
	{3, "Resolution", "Resolve to perform what you ought; perform without fail what you resolve.", []string{
		"Set clear goals and stick to them",
		"Beat procrastination by starting now",
		"Build willpower and do not give up easily",
		"Break large goals into small steps",
	}},
	{4, "Frugality", "Make no expense but to do good to others or yourself; waste nothing.", []string{
		"Set a budget and keep to it",
		"Avoid impulse purchases",
		"Invest in self-improvement",
		"Save and plan for the future",
	}},
	{5, "Industry", "Lose no time; be always employed in something useful; cut off all unnecessary actions.", []string{
		"Plan your time and work efficiently",
		"Do not waste time on meaningless things",
		"Keep learning new knowledge and skills",
		"Stay focused and do one thing at a time",
	}},
	{6, "Sincerity", "Use no hurtful deceit; think innocently and justly, and, if you speak, speak accordingly.", []string{
		"Tell the truth even when it is hard",
		"Admit mistakes and take responsibility",
		"Keep inner honesty and integrity",
		"Avoid every form of deception",
	}},
	{7, "Justice", "Wrong none by doing injuries, or omitting the benefits that are your duty.", []string{
		"Treat everyone fairly",
		"Help those who need help",
		"Do not take advantage of others",
		"Speak up for what is right",
	}},
	{8, "Moderation", "Avoid extremes; forbear resenting injuries so much as you think they deserve.", []string{
		"Keep balance and avoid extremes",
		"Learn to compromise and forbear",
		"Control emotions and handle conflict rationally",
		"Look for the middle way",
	}},
	{9, "Cleanliness", "Tolerate no uncleanliness in body, clothes, or habitation.", []string{
		"Keep up personal hygiene",
		"Tidy your living and working space",
		"Dress neatly and appropriately",
		"Build healthy daily habits",
	}},
	{10, "Tranquility", "Be not disturbed at trifles, or at accidents common or unavoidable.", []string{
		"Learn to relax and meditate",
		"Do not let small things trouble you",
		"Keep an inner calm",
		"Build resilience to stress",
	}},
	{11, "Chastity", "Rarely use venery but for health or offspring; never to dullness, weakness, or injury.", []string{
		"Keep body and mind pure",
		"Avoid improper behavior",
		"Respect yourself and others",
		"Cultivate good character",
	}},
	{12, "Humility", "Imitate Jesus and Socrates.", []string{
		"Acknowledge your shortcomings",
		"Learn humbly from the strengths of others",
		"Do not show off achievements",
		"Stay open and modest",
	}},
}

// Catalog returns a copy of the thirteen virtue definitions in order.
func Catalog() []VirtueDefinition {
	result := make([]VirtueDefinition, 0, VirtueCount)
	for _, v := range virtueCatalog {
		v.Tips = append([]string(nil), v.Tips...)
		result = append(result, v)
	}
	return result
}

func ValidVirtueIndex(i int) bool {
	return i >= 0 && i < VirtueCount
}
