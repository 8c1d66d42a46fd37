package driver

// IndexQueries are run once per connection by BuildIndices.
var IndexQueries = []string{
	"CREATE INDEX ON :Word(text);",
	"CREATE INDEX ON :Word(run_id);",
	"CREATE INDEX ON :Run(run_id);",
}

const (
	SaveRunQuery = `
		MERGE (r:Run {run_id: $run_id})
		SET r.mode = $mode,
			r.created_at = $created_at,
			r.seeds = $seeds,
			r.positive = $positive,
			r.negative = $negative,
			r.neutral = $neutral,
			r.ambiguous = $ambiguous,
			r.not_set = $not_set,
			r.total = $total
		RETURN r.run_id AS run_id
	`

	// SaveWordsQuery expects $words as a list of maps with the keys
	// text, polarity, positive, negative, neutral, iteration and seed.
	SaveWordsQuery = `
		UNWIND $words AS w
		MERGE (n:Word {run_id: $run_id, text: w.text})
		SET n.polarity = w.polarity,
			n.positive = w.positive,
			n.negative = w.negative,
			n.neutral = w.neutral,
			n.iteration = w.iteration,
			n.seed = w.seed
		RETURN count(n) AS saved
	`

	// SaveRelationsQuery expects $relations as a list of maps with the keys
	// uid, from, to and type.
	SaveRelationsQuery = `
		UNWIND $relations AS r
		MATCH (a:Word {run_id: $run_id, text: r.from})
		MATCH (b:Word {run_id: $run_id, text: r.to})
		MERGE (a)-[e:RELATED {run_id: $run_id, uid: r.uid}]->(b)
		SET e.type = r.type
		RETURN count(e) AS saved
	`

	GetWordQuery = `
		MATCH (n:Word {run_id: $run_id, text: $text})
		RETURN n.text AS text,
			n.polarity AS polarity,
			n.positive AS positive,
			n.negative AS negative,
			n.neutral AS neutral,
			n.iteration AS iteration,
			n.seed AS seed
	`

	DeleteRunQuery = `
		MATCH (n)
		WHERE (n:Word OR n:Run) AND n.run_id = $run_id
		DETACH DELETE n
	`
)
