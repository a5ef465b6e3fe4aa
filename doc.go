/*
Package reelsense scores movie reviews against a word polarity lexicon and
summarizes the results.

A review is cleaned, split into sentences and scored sentence by sentence;
its aggregate score is the mean of its sentence scores. On top of that the
package finds the most positive and negative runs of consecutive reviews,
ranks movies by mean sentiment, compares two movies head to head and
resolves misspelled movie titles against a canonical list.

	lex, err := reelsense.LoadLexicon("AFINN-en-165.txt")
	if err != nil {
		log.Fatal(err)
	}
	splitter, err := reelsense.NewPunktSplitter()
	if err != nil {
		log.Fatal(err)
	}
	processor := reelsense.NewProcessor(reelsense.NewScorer(lex, splitter))
	result := processor.Process(reviews)
	summary := reelsense.Summarize(result.Reviews, 5)
*/
package reelsense
