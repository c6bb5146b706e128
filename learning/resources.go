package learning

// Priority tiers for learning recommendations.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Course is one learning resource.
type Course struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Resource bundles the courses and priority tier for one skill.
type Resource struct {
	Priority string   `json:"priority"`
	Courses  []Course `json:"courses"`
}

// Resources is the static learning-resource table, keyed by canonical skill
// name. Loaded once at process start, never mutated.
var Resources = map[string]Resource{
	// Programming Languages
	"python": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "Python for Everybody", Platform: "Coursera", URL: "https://www.coursera.org/specializations/python"},
			{Name: "Complete Python Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/complete-python-bootcamp/"},
			{Name: "Python Tutorial", Platform: "W3Schools", URL: "https://www.w3schools.com/python/"},
		},
	},
	"javascript": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "JavaScript: The Complete Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/javascript-the-complete-guide-2020-beginner-advanced/"},
			{Name: "JavaScript Algorithms", Platform: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/"},
			{Name: "Modern JavaScript", Platform: "JavaScript.info", URL: "https://javascript.info/"},
		},
	},
	"java": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "Java Programming Masterclass", Platform: "Udemy", URL: "https://www.udemy.com/course/java-the-complete-java-developer-course/"},
			{Name: "Java Tutorial", Platform: "Oracle", URL: "https://docs.oracle.com/javase/tutorial/"},
		},
	},
	"typescript": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "Understanding TypeScript", Platform: "Udemy", URL: "https://www.udemy.com/course/understanding-typescript/"},
			{Name: "TypeScript Handbook", Platform: "TypeScript", URL: "https://www.typescriptlang.org/docs/handbook/intro.html"},
		},
	},
	"go": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "A Tour of Go", Platform: "go.dev", URL: "https://go.dev/tour/"},
			{Name: "Go: The Complete Developer's Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/go-the-complete-developers-guide/"},
		},
	},

	// Web Development
	"react": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "React - The Complete Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/"},
			{Name: "React Official Docs", Platform: "React.dev", URL: "https://react.dev/learn"},
			{Name: "Full Stack Open", Platform: "University of Helsinki", URL: "https://fullstackopen.com/en/"},
		},
	},
	"node.js": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "Node.js Complete Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/nodejs-the-complete-guide/"},
			{Name: "Node.js Documentation", Platform: "Node.js", URL: "https://nodejs.org/en/docs/"},
		},
	},
	"angular": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "Angular - The Complete Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/the-complete-guide-to-angular-2/"},
			{Name: "Angular Docs", Platform: "angular.dev", URL: "https://angular.dev/tutorials"},
		},
	},
	"graphql": {
		Priority: PriorityLow,
		Courses: []Course{
			{Name: "How to GraphQL", Platform: "howtographql.com", URL: "https://www.howtographql.com/"},
			{Name: "GraphQL Documentation", Platform: "graphql.org", URL: "https://graphql.org/learn/"},
		},
	},

	// Databases
	"sql": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "SQL for Data Science", Platform: "Coursera", URL: "https://www.coursera.org/learn/sql-for-data-science"},
			{Name: "SQL Tutorial", Platform: "W3Schools", URL: "https://www.w3schools.com/sql/"},
		},
	},
	"mongodb": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "MongoDB University", Platform: "MongoDB", URL: "https://learn.mongodb.com/"},
			{Name: "MongoDB Complete Guide", Platform: "Udemy", URL: "https://www.udemy.com/course/mongodb-the-complete-developers-guide/"},
		},
	},
	"postgresql": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "PostgreSQL Tutorial", Platform: "postgresqltutorial.com", URL: "https://www.postgresqltutorial.com/"},
			{Name: "The Complete SQL Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/the-complete-sql-bootcamp/"},
		},
	},
	"redis": {
		Priority: PriorityLow,
		Courses: []Course{
			{Name: "Redis University", Platform: "Redis", URL: "https://university.redis.com/"},
			{Name: "Redis Documentation", Platform: "redis.io", URL: "https://redis.io/docs/"},
		},
	},

	// Cloud & DevOps
	"aws": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "AWS Certified Solutions Architect", Platform: "AWS Training", URL: "https://aws.amazon.com/training/"},
			{Name: "AWS Fundamentals", Platform: "Coursera", URL: "https://www.coursera.org/learn/aws-fundamentals-going-cloud-native"},
		},
	},
	"docker": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "Docker Mastery", Platform: "Udemy", URL: "https://www.udemy.com/course/docker-mastery/"},
			{Name: "Docker Documentation", Platform: "Docker", URL: "https://docs.docker.com/get-started/"},
		},
	},
	"kubernetes": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "Kubernetes Basics", Platform: "kubernetes.io", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/"},
			{Name: "Certified Kubernetes Administrator", Platform: "Udemy", URL: "https://www.udemy.com/course/certified-kubernetes-administrator-with-practice-tests/"},
		},
	},
	"git": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "Git & GitHub Crash Course", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=RGOj5yH7evk"},
			{Name: "Git Documentation", Platform: "Git", URL: "https://git-scm.com/doc"},
		},
	},
	"terraform": {
		Priority: PriorityLow,
		Courses: []Course{
			{Name: "Terraform Tutorials", Platform: "HashiCorp", URL: "https://developer.hashicorp.com/terraform/tutorials"},
		},
	},

	// Data Science & AI
	"machine learning": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "Machine Learning Specialization", Platform: "Coursera", URL: "https://www.coursera.org/specializations/machine-learning-introduction"},
			{Name: "Machine Learning Crash Course", Platform: "Google", URL: "https://developers.google.com/machine-learning/crash-course"},
		},
	},
	"data science": {
		Priority: PriorityHigh,
		Courses: []Course{
			{Name: "Data Science Specialization", Platform: "Coursera", URL: "https://www.coursera.org/specializations/jhu-data-science"},
			{Name: "Data Science Path", Platform: "Kaggle", URL: "https://www.kaggle.com/learn"},
		},
	},
	"tensorflow": {
		Priority: PriorityMedium,
		Courses: []Course{
			{Name: "TensorFlow Developer Certificate", Platform: "Coursera", URL: "https://www.coursera.org/professional-certificates/tensorflow-in-practice"},
			{Name: "TensorFlow Tutorials", Platform: "tensorflow.org", URL: "https://www.tensorflow.org/tutorials"},
		},
	},
}
