// Package prompt builds all prompt text for the pipeline's LLM-facing
// stages. Builders are stateless functions: all context comes from
// parameters, output is a ready-to-send prompt string.
package prompt

import "fmt"

const slotExtractorTemplate = `You are a slot extractor that extracts time-related information from user queries.

**CRITICAL RULE: ONLY extract time information that is EXPLICITLY stated in the query. Do NOT infer, assume, or hallucinate time information.**

**Output contract (STRICT JSON):**
- Keys: "start_text", "end_text", "duration"
- Values: each is **string or null**.
- It is **OK (and preferred)** to return null when something is not present or unclear. Do **not** invent values.
- Preserve the user's phrasing (e.g., "tomorrow", "Friday 2pm", "Nov 15", "EOM", "6pm", "in 2 hours").
- No absolute dates/times, no ISO, no defaults, no normalization.

{"start_text": string|null, "end_text": string|null, "duration": string|null}

## Detection Rules

### 1) Duration (metadata only)
Extract when any duration phrase is present (keep as-is):
- Forms: "for <N><unit>", "for <N> <unit>", "<N><unit>", "<N> <unit>", compounds like "2h30m", "1.5h", "90m"
- Units: m|min|mins|minute|minutes|h|hr|hrs|hour|hours
- Phrases: "for half an hour", "for an hour", "take 45 minutes"
- **Not duration:** phone numbers, prices, counts ("buy 2 apples"), IDs.

### 2) End (deadline or range-end) -> end_text
Mark end_text if either of these:

**A) Deadline markers (no explicit range needed)**
- Keywords: by, before, no later than, due, deadline, at the latest, by EOD/EOW/EOM, end of day/week/month
- "until <time/date>" **without** a clear start => treat as deadline
- "through <date/time>" **without** "from" => deadline

**B) Explicit range joiners (capture the end side)**
- Joiners: "from X to Y", "between X and Y", "X-Y", "X through Y", "start ... until Y" (when a start exists)

### 3) Start (when-to-begin anchor) -> start_text
Mark start_text when you see a start cue:
- Relative/vague anchors: today, tomorrow, tonight, "this <period>", "next <period/week>"
- Specific dates/times: "Nov 15", "November 15 3pm", "11/15", "at 6", "6pm", "Friday"
- Start verbs: "from 3", "starting tomorrow", "begin at noon", "start Friday"
- "in <X time>" offsets: "in 2 hours", "in 15 minutes"

## Examples:

### Start only:
- "call mom tomorrow" -> {"start_text":"tomorrow","end_text":null,"duration":null}
- "meeting at 3pm" -> {"start_text":"3pm","end_text":null,"duration":null}
- "start next week" -> {"start_text":"next week","end_text":null,"duration":null}

### End only (deadlines):
- "send report by Friday 5pm" -> {"start_text":null,"end_text":"Friday 5pm","duration":null}
- "finish before 5pm" -> {"start_text":null,"end_text":"5pm","duration":null}
- "work until 4" -> {"start_text":null,"end_text":"4","duration":null}

### Duration only:
- "study for 2 hours" -> {"start_text":null,"end_text":null,"duration":"2 hours"}
- "take a 45-minute break" -> {"start_text":null,"end_text":null,"duration":"45-minute"}

### Start + end (range):
- "from 10 to 1" -> {"start_text":"10","end_text":"1","duration":null}
- "between 9am and noon" -> {"start_text":"9am","end_text":"noon","duration":null}

### Start + duration:
- "study for 45m at 6pm" -> {"start_text":"6pm","end_text":null,"duration":"45m"}
- "work tomorrow for 2 hours" -> {"start_text":"tomorrow","end_text":null,"duration":"2 hours"}

### Complex combinations:
- "start next week, finish by EOM" -> {"start_text":"next week","end_text":"EOM","duration":null}

### No time information (CRITICAL - these must return ALL nulls):
- "ping Alex about the doc" -> {"start_text":null,"end_text":null,"duration":null}
- "buy groceries at the store" -> {"start_text":null,"end_text":null,"duration":null}
- "call mom" -> {"start_text":null,"end_text":null,"duration":null}

**DO NOT infer or assume time information. Only extract what is explicitly stated.**
**DO NOT extract location phrases like "at the store", "in the library", "at home" as time information.**

**IMPORTANT:** Return ONLY valid JSON. No explanations, no markdown formatting, just the JSON object.

User Query: %q
User Timezone: %s

Extract the slots and return JSON:`

// SlotExtractor renders the slot extraction prompt for a user query.
func SlotExtractor(query, timezone string) string {
	return fmt.Sprintf(slotExtractorTemplate, query, timezone)
}
