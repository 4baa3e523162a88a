package datagen

import "fmt"

// ── 词库 ──

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
}

var cities = []string{
	"Springfield", "Franklin", "Clinton", "Greenville", "Bristol", "Fairview",
	"Salem", "Madison", "Georgetown", "Arlington", "Ashland", "Dover",
	"Oxford", "Jackson", "Burlington", "Manchester", "Milton", "Newport",
	"Auburn", "Centerville", "Clayton", "Dayton", "Lexington", "Milford",
	"Riverside", "Cleveland", "Hudson", "Kingston", "Lancaster", "Monroe",
	"Oakland", "Richmond", "Troy", "Winchester", "Florence", "Glendale",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com", "aol.com",
}

// 营销短语三段式：形容词 + 修饰词 + 名词
var catchAdjectives = []string{
	"Adaptive", "Advanced", "Balanced", "Compatible", "Configurable", "Customizable",
	"Ergonomic", "Innovative", "Intuitive", "Optimized", "Progressive", "Robust",
	"Seamless", "Streamlined", "Versatile", "Visionary", "Dynamic", "Premium",
}

var catchModifiers = []string{
	"24hour", "analyzing", "asymmetric", "clear-thinking", "didactic", "encompassing",
	"full-range", "grid-enabled", "high-level", "impactful", "logistical", "modular",
	"multi-tasking", "next-generation", "scalable", "systematic", "user-facing", "zero-defect",
}

var catchNouns = []string{
	"ability", "approach", "architecture", "benchmark", "capability", "concept",
	"framework", "hierarchy", "initiative", "methodology", "paradigm", "solution",
	"standardization", "strategy", "synergy", "toolset", "utilization", "workforce",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "Ltd", "PLC", "and Sons",
}

// CatchPhrase 生成一条营销短语
func CatchPhrase(r *Rand) string {
	return fmt.Sprintf("%s %s %s", Pick(r, catchAdjectives), Pick(r, catchModifiers), Pick(r, catchNouns))
}

// CompanyName 生成一个公司名
func CompanyName(r *Rand) string {
	return fmt.Sprintf("%s %s", Pick(r, lastNames), Pick(r, companySuffixes))
}
