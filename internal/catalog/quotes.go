package catalog

import "github.com/quotype/quotype/internal/model"

// builtinQuotes is the shipped passage database. Short sentences and pangrams
// are easy, quotes with punctuation and mixed case are medium, long passages
// are hard.
var builtinQuotes = []model.Quote{
	// Easy.
	{Text: "The quick brown fox jumps over the lazy dog.", Difficulty: model.Easy, Category: "pangram", Author: "Traditional pangram"},
	{Text: "Hello world! Welcome to the typing test.", Difficulty: model.Easy, Category: "technical", Author: "Programming classic"},
	{Text: "Practice makes perfect in everything we do.", Difficulty: model.Easy, Category: "inspirational", Author: "Traditional proverb"},
	{Text: "Success is not final, failure is not fatal.", Difficulty: model.Easy, Category: "inspirational", Author: "Winston Churchill"},
	{Text: "The five boxing wizards jump quickly.", Difficulty: model.Easy, Category: "pangram", Author: "Traditional pangram"},
	{Text: "Bright vixens jump; dozy fowl quack.", Difficulty: model.Easy, Category: "pangram", Author: "Traditional pangram"},
	{Text: "Quick zephyrs blow, vexing daft Jim.", Difficulty: model.Easy, Category: "pangram", Author: "Traditional pangram"},
	{Text: "Sphinx of black quartz, judge my vow.", Difficulty: model.Easy, Category: "pangram", Author: "Traditional pangram"},
	{Text: "Waltz, nymph, for quick jigs vex bud.", Difficulty: model.Easy, Category: "pangram", Author: "Traditional pangram"},
	{Text: "The cat sat on the mat with a hat.", Difficulty: model.Easy, Category: "common", Author: "Children's rhyme"},
	{Text: "Birds fly high in the blue sky above.", Difficulty: model.Easy, Category: "common", Author: "Nature description"},
	{Text: "Good things come to those who wait.", Difficulty: model.Easy, Category: "inspirational", Author: "Traditional proverb"},
	{Text: "Every cloud has a silver lining inside.", Difficulty: model.Easy, Category: "inspirational", Author: "Traditional proverb"},
	{Text: "Time flies when you are having fun.", Difficulty: model.Easy, Category: "common", Author: "Traditional saying"},
	{Text: "Actions speak louder than words ever will.", Difficulty: model.Easy, Category: "inspirational", Author: "Traditional proverb"},
	{Text: "Knowledge is power in our modern world.", Difficulty: model.Easy, Category: "inspirational", Author: "Francis Bacon"},
	{Text: "All work and no play makes Jack dull.", Difficulty: model.Easy, Category: "common", Author: "Traditional proverb"},
	{Text: "Better late than never in most cases.", Difficulty: model.Easy, Category: "common", Author: "Traditional proverb"},
	{Text: "Clean your room before you go outside.", Difficulty: model.Easy, Category: "common", Author: "Parent's advice"},
	{Text: "Dogs bark loudly when strangers approach.", Difficulty: model.Easy, Category: "common", Author: "Observation"},

	// Medium.
	{Text: "The only way to do great work is to love what you do.", Difficulty: model.Medium, Category: "inspirational", Author: "Steve Jobs"},
	{Text: "Innovation distinguishes between a leader and a follower.", Difficulty: model.Medium, Category: "inspirational", Author: "Steve Jobs"},
	{Text: "Life is what happens to you while you're busy making other plans.", Difficulty: model.Medium, Category: "inspirational", Author: "John Lennon"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Difficulty: model.Medium, Category: "inspirational", Author: "Eleanor Roosevelt"},
	{Text: "It is during our darkest moments that we must focus to see the light.", Difficulty: model.Medium, Category: "inspirational", Author: "Aristotle"},
	{Text: "Technology is best when it brings people together in meaningful ways.", Difficulty: model.Medium, Category: "technical", Author: "Matt Mullenweg"},
	{Text: "Programming is not about what you know; it's about what you can figure out.", Difficulty: model.Medium, Category: "technical", Author: "Chris Pine"},
	{Text: "The most disastrous thing that you can ever learn is your first programming language.", Difficulty: model.Medium, Category: "technical", Author: "Alan Kay"},
	{Text: "Sometimes it pays to stay in bed on Monday, rather than spending the rest of the week debugging.", Difficulty: model.Medium, Category: "technical", Author: "Dan Salomon"},
	{Text: "Code is like humor. When you have to explain it, it's bad.", Difficulty: model.Medium, Category: "technical", Author: "Cory House"},
	{Text: "The best way to predict the future is to invent it yourself through innovation.", Difficulty: model.Medium, Category: "inspirational", Author: "Alan Kay"},
	{Text: "Simplicity is the ultimate sophistication in design and programming alike.", Difficulty: model.Medium, Category: "technical", Author: "Leonardo da Vinci"},
	{Text: "Java is to JavaScript what Car is to Carpet.", Difficulty: model.Medium, Category: "technical", Author: "Chris Heilmann"},
	{Text: "The function of good software is to make the complex appear to be simple.", Difficulty: model.Medium, Category: "technical", Author: "Grady Booch"},
	{Text: "Measuring programming progress by lines of code is like measuring aircraft building by weight.", Difficulty: model.Medium, Category: "technical", Author: "Bill Gates"},
	{Text: "Nine people can't make a baby in a month.", Difficulty: model.Medium, Category: "inspirational", Author: "Fred Brooks"},
	{Text: "If debugging is the process of removing bugs, then programming must be the process of putting them in.", Difficulty: model.Medium, Category: "technical", Author: "Edsger Dijkstra"},
	{Text: "A good programmer is someone who always looks both ways before crossing a one-way street.", Difficulty: model.Medium, Category: "technical", Author: "Doug Linder"},
	{Text: "Computer science is no more about computers than astronomy is about telescopes.", Difficulty: model.Medium, Category: "technical", Author: "Edsger Dijkstra"},
	{Text: "The most important property of a program is whether it accomplishes the intention of its user.", Difficulty: model.Medium, Category: "technical", Author: "C.A.R. Hoare"},

	// Hard.
	{Text: "The advancement and diffusion of knowledge is the only guardian of true liberty.", Difficulty: model.Hard, Category: "inspirational", Author: "James Madison"},
	{Text: "Education is the most powerful weapon which you can use to change the world.", Difficulty: model.Hard, Category: "inspirational", Author: "Nelson Mandela"},
	{Text: "The important thing is not to stop questioning. Curiosity has its own reason for existing.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "In the middle of difficulty lies opportunity, and every difficulty brings with it opportunity.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "We cannot solve our problems with the same thinking we used when we created them.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The only thing we have to fear is fear itself, and the courage to face it head on.", Difficulty: model.Hard, Category: "inspirational", Author: "Franklin D. Roosevelt"},
	{Text: "I have no special talent. I am only passionately curious about the world around me.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The difference between genius and stupidity is that genius has its limits in understanding.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Imagination is more important than knowledge, for knowledge is limited to all we know and understand.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The world as we have created it is a process of our thinking. It cannot be changed without changing our thinking.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Logic will get you from A to B. Imagination will take you everywhere in the creative process.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The true sign of intelligence is not knowledge but imagination and creative problem solving.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "We can't solve problems by using the same kind of thinking we used when we created them in the first place.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "It is not that I'm so smart. But I stay with the questions much longer than most people do.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The most beautiful thing we can experience is the mysterious. It is the source of all true art and science.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Anyone who has never made a mistake has never tried anything new in their life and career.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Try not to become a man of success, but rather try to become a man of value in society.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The important thing is not to stop questioning. Curiosity has its own reason for existing in our lives.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Peace cannot be kept by force; it can only be achieved by understanding and mutual respect.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Only one who devotes himself to a cause with his whole strength and soul can be a true master.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The value of a man should be seen in what he gives and not in what he is able to receive.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "Any intelligent fool can make things bigger and more complex. It takes a touch of genius to move in the opposite direction.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The hardest thing in the world to understand is the income tax and quantum physics.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "If you can't explain it simply, you don't understand it well enough in your own mind.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
	{Text: "The most incomprehensible thing about the world is that it is comprehensible to human minds.", Difficulty: model.Hard, Category: "inspirational", Author: "Albert Einstein"},
}
