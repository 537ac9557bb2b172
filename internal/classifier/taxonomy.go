// Package classifier decides whether an expense is essential or an
// opportunity to redirect spending into learning.
package classifier

// essentialKeywords marks spending that should never trigger course
// suggestions. Matched by substring against the combined item name and
// description, lowercased.
var essentialKeywords = []string{
	// Basic necessities & groceries
	"groceries", "vegetables", "fruits", "rice", "wheat", "flour", "dal", "milk", "eggs",
	"bread", "butter", "oil", "sugar", "salt", "spices", "lentils", "beans",
	// Healthy fruits & vegetables
	"apple", "banana", "orange", "mango", "grapes", "watermelon", "papaya", "pomegranate",
	"tomato", "potato", "onion", "carrot", "spinach", "broccoli", "cabbage",
	// Healthy proteins
	"chicken", "fish", "meat", "paneer", "tofu", "nuts", "almonds", "cashews",
	// Healthcare
	"medicine", "doctor", "hospital", "medical", "health insurance", "treatment", "pharmacy",
	// Bills & utilities
	"rent", "electricity", "water bill", "gas", "internet bill", "phone bill", "maintenance",
	// Education
	"school fee", "college fee", "tuition", "books", "stationery", "uniform", "study material",
	// Transport (essential)
	"transport", "bus pass", "metro", "fuel for work", "commute", "petrol for office",
	// Healthy food & drinks
	"salad", "juice", "smoothie", "whole grain", "protein", "vitamins", "green tea",
	// Fitness & wellness
	"gym membership", "yoga", "fitness", "exercise equipment", "sports equipment",
	// Productive items
	"course", "learning", "skill development", "certification", "training",
	"laptop for work", "work equipment", "professional tools",
}

// wastefulKeywords marks spending that triggers course suggestions.
var wastefulKeywords = []string{
	// Junk food (clearly unhealthy)
	"burger", "pizza", "fries", "french fries", "chips", "wafers", "candy",
	"cake", "pastry", "donuts", "cookies", "biscuits", "soda", "cold drink", "cola",
	"junk food", "fast food", "street food", "pani puri", "samosa fried", "pakora",
	"momos", "chaat", "vada pav", "pav bhaji fried",
	// Processed & unhealthy
	"instant noodles", "maggi", "kurkure", "lays", "doritos", "cheetos",
	// Harmful substances
	"cigarette", "tobacco", "alcohol", "beer", "wine", "whiskey", "vodka", "rum", "smoking",
	// Entertainment/Luxury (non-essential)
	"movie ticket", "cinema", "gaming", "video game", "console", "playstation", "xbox",
	"party", "club", "nightclub", "pub", "bar",
	"luxury item", "branded bag", "shopping spree", "impulse buy", "unnecessary shopping",
	// Unnecessary subscriptions
	"ott subscription", "netflix", "prime video", "hotstar", "multiple subscriptions",
}

// UI category labels with dedicated classification rules.
const (
	CategoryFoodAndDrinks = "Food & Drinks"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryTransport     = "Transport"
)
