package skills

// lexicon is the fixed list of skill tokens searched for in resume text.
var lexicon = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "spring", "aws", "azure", "gcp",
	"docker", "kubernetes", "jenkins", "git", "sql", "nosql", "mongodb",
	"postgresql", "mysql", "redis", "html", "css", "sass", "less", "bootstrap",
	"tailwind", "material-ui", "redux", "graphql", "rest", "api", "microservices",
	"ci/cd", "devops", "agile", "scrum", "jira", "confluence", "linux", "unix",
}

// aliases maps spelling variants onto the canonical skill name. Every value
// is either absent from the keys or maps to itself, which keeps Normalize
// idempotent.
var aliases = map[string]string{
	// languages
	"js":            "javascript",
	"ts":            "typescript",
	"py":            "python",
	"c#":            "csharp",
	"c++":           "cpp",
	"c plus plus":   "cpp",
	"ruby on rails": "ruby",
	"ror":           "ruby",

	// databases
	"postgres": "postgresql",
	"mssql":    "sql server",
	"ms sql":   "sql server",

	// cloud
	"aws":          "amazon web services",
	"azure":        "microsoft azure",
	"gcp":          "google cloud platform",
	"google cloud": "google cloud platform",

	// web
	"react.js":   "react",
	"reactjs":    "react",
	"react js":   "react",
	"angular.js": "angular",
	"angularjs":  "angular",
	"angular js": "angular",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"vue js":     "vue",
	"node.js":    "nodejs",
	"node js":    "nodejs",
	"node":       "nodejs",
	"express.js": "express",
	"expressjs":  "express",
	"express js": "express",

	// machine learning
	"ml":  "machine learning",
	"ai":  "artificial intelligence",
	"dl":  "deep learning",
	"nlp": "natural language processing",
	"cv":  "computer vision",

	// devops
	"ci/cd": "continuous integration",
	"ci cd": "continuous integration",
	"cicd":  "continuous integration",
	"k8s":   "kubernetes",

	// methodologies and tooling
	"agile":     "agile methodology",
	"scrum":     "scrum methodology",
	"waterfall": "waterfall methodology",
	"github":    "git",
	"gitlab":    "git",
}

var stopTokens = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "using": {}, "via": {}, "through": {},
}
