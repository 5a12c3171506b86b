package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	DetectFormFieldsDescription = `Detect labeled form fields in raw OCR text from a scanned financial statement.

**When to use:** You already have OCR text for a statement and need the structured label/value pairs it contains.

**Why it's useful:** Turns noisy OCR output into scored fields (account numbers, institution names, balances, contact details) without any template or layout knowledge.

**Examples:**
• Statement ingestion: "Detect fields in the OCR text of checking-statement.pdf"
• Pipeline debugging: "Run detection on this OCR dump to see which labels survive the confidence threshold"

**Common workflows:**
1. OCR → detect_form_fields → store fields with confidence scores
2. OCR → detect_form_fields → extract_account_info → account record

**Best practices:** Feed the raw OCR text unmodified; the detector sanitizes and truncates oversized input itself. Fields below the confidence threshold are dropped, so a missing field usually means a weak label, not missing text.`

	DetectFormFieldsFileDescription = `Extract text from a statement file (.pdf or .txt) and detect form fields in it.

**When to use:** You have a statement on disk and want detection in one step, without running text extraction yourself.

**Why it's useful:** Combines validation, text extraction, and field detection, and appends the derived account info to the result.

**Examples:**
• One-shot processing: "Detect fields in /statements/2024-03-checking.pdf"
• Text fixtures: "Run detection on sample-statement.txt"

**Common workflows:**
1. Statement file → detect_form_fields_file → fields + account info
2. Batch ingestion: validate each file → detect_form_fields_file → persist results

**Best practices:** Only .pdf and .txt files are accepted; anything else is rejected before extraction. PDFs are validated for structural integrity first.`

	ExtractAccountInfoDescription = `Derive account attributes (number, institution, name, type) from previously detected fields.

**When to use:** You already have detected fields (from detect_form_fields) and want the normalized account summary.

**Why it's useful:** Maps the many label variants (Account #, Acct No, Card Number, Bank, Account Holder...) onto a fixed set of attribute keys, and reduces account numbers to a safe four digit group.

**Examples:**
• Account matching: "Extract account info from these fields to link the statement to an existing account"
• Re-deriving after edits: "Recompute account info after manually correcting a field value"

**Common workflows:**
1. detect_form_fields → review fields → extract_account_info
2. Stored fields → extract_account_info → account record update

**Best practices:** Pass the fields exactly as detect_form_fields returned them (a JSON array). Later fields overwrite earlier ones when they map to the same attribute.`

	FieldDetectServerInfoDescription = `Get information about the field detection server and its configuration.

**When to use:** Need to confirm the server version, detection bounds, or the confidence threshold in effect.

**Why it's useful:** Makes the active limits visible so unexpected truncation or missing fields can be diagnosed.

**Examples:**
• Troubleshooting: "Check the max text length before reporting a truncation issue"
• Version check: "Confirm which server version processed this batch"`
)
