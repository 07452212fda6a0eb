package manual

import "legalaid-backend/models"

// defaultTopics returns the built-in topic catalog. Order matters: it is the
// tie-break key for Classify.
func defaultTopics() []models.LegalTopic {
	return []models.LegalTopic{
		{
			Keywords: []string{"rent", "landlord", "tenant", "lease", "eviction", "deposit"},
			Answer: models.LegalAnalysis{
				Category:             "Property & Tenant Law",
				ApplicableSections:   "Varies tightly by state, but generally falls under the Rent Control Act or state Landlord-Tenant Acts.",
				PenaltiesFinesTenure: "Unlawful evictions or withholding of security deposits can result in civil fines or court orders commanding restitution. Tenure limits apply based on the lease agreement.",
				Advice:               "Never withhold rent as a retaliatory measure, as this can be grounds for immediate legal eviction. Document all communication in writing. If facing an illegal rent hike or eviction without proper notice (usually 30-60 days), remain on the property and seek local legal aid.",
				RequiredDocuments:    "- Original Lease Agreement\n- Proof of all recent rent payments\n- Written communications with the landlord (emails/texts)",
				RiskScore:            5,
			},
		},
		{
			Keywords: []string{"accident", "car", "crash", "insurance", "injury", "damage", "traffic", "hit"},
			Answer: models.LegalAnalysis{
				Category:             "Traffic & Personal Injury Law",
				ApplicableSections:   "Motor Vehicles Act (e.g., Section 166 for compensation) and local traffic codes.",
				PenaltiesFinesTenure: "Fleeing the scene of an accident can result in criminal hit-and-run charges (fines and potential jail time). Traffic violations bring variable fines.",
				Advice:               "Do not admit fault at the scene. Ensure the police file a First Information Report (FIR) or standard collision report. Seek medical attention immediately even if injuries seem minor, as insurance claims rely heavily on early documentation.",
				RequiredDocuments:    "- Police FIR / Accident Report\n- Photographs of the scene and damage\n- Medical records and bills\n- Driver's license and insurance details of all parties",
				RiskScore:            6,
			},
		},
		{
			Keywords: []string{"divorce", "child", "alimony", "marriage", "custody", "spouse", "abuse", "domestic"},
			Answer: models.LegalAnalysis{
				Category:             "Family Law & Domestic Relations",
				ApplicableSections:   "Hindu Marriage Act, Special Marriage Act, or Domestic Violence Act depending on jurisdiction and religion.",
				PenaltiesFinesTenure: "Domestic violence carries severe criminal penalties including non-bailable imprisonment. Alimony defaults can lead to asset seizure.",
				Advice:               "In cases of domestic violence, your safety is paramount; contact local law enforcement immediately. For divorce or custody, do NOT move out of the marital home without legal counsel, as this can be construed as abandonment. Document all finances quietly.",
				RequiredDocuments:    "- Marriage certificate\n- Joint financial statements and property deeds\n- Any evidence of abuse (photos, texts, police reports)\n- Birth certificates of children",
				RiskScore:            8,
			},
		},
		{
			Keywords: []string{"salary", "fired", "termination", "boss", "harassment", "work", "job", "employer"},
			Answer: models.LegalAnalysis{
				Category:             "Employment & Labor Law",
				ApplicableSections:   "Industrial Disputes Act, Payment of Wages Act, and local Shops and Establishments Acts.",
				PenaltiesFinesTenure: "Employers withholding wages or violating termination clauses face severe labor court fines and mandates to pay wage arrears with interest.",
				Advice:               "Do not sign any forced resignation letters. If you are terminated without cause, collect all evidence of your employment and good standing. If you are facing workplace harassment, report it immediately to the HR or POSH (Prevention of Sexual Harassment) committee in writing.",
				RequiredDocuments:    "- Offer letter and Employment Contract\n- Recent payslips and bank statements\n- Notice of termination or relevant emails\n- Employee handbook/policies",
				RiskScore:            5,
			},
		},
		{
			Keywords: []string{"police", "arrest", "bail", "jail", "fraud", "theft", "criminal", "assault"},
			Answer: models.LegalAnalysis{
				Category:             "Criminal Law",
				ApplicableSections:   "Bharatiya Nyaya Sanhita (BNS) / Indian Penal Code (IPC), and Code of Criminal Procedure (CrPC).",
				PenaltiesFinesTenure: "Punishments range from fines to life imprisonment depending heavily on whether the offense is bailable, cognizable, and compoundable.",
				Advice:               "EXERCISE YOUR RIGHT TO REMAIN SILENT. Do not offer explanations to the police without a lawyer present. Assert your right to legal counsel immediately. If you have been assaulted or defrauded, insist on filing an FIR immediately.",
				RequiredDocuments:    "- Copy of the FIR (First Information Report)\n- Arrest memo\n- Medical report (if assault)\n- Any relevant video or textual evidence",
				RiskScore:            9,
			},
		},
		{
			Keywords: []string{"scam", "online", "bank", "stolen", "hacked", "phishing", "cyber"},
			Answer: models.LegalAnalysis{
				Category:             "Cybercrime & Information Technology Law",
				ApplicableSections:   "Information Technology (IT) Act, 2000 (e.g., Sections 43, 66).",
				PenaltiesFinesTenure: "Cybercrimes often carry minimum 3-year prison sentences and massive fines for data breaches or identity theft.",
				Advice:               "Immediately freeze your bank accounts and credit cards. Do not delete the fraudulent emails or messages (they contain IP headers and meta-data). Report the incident immediately to the national cybercrime reporting portal and your bank.",
				RequiredDocuments:    "- Screenshots of the scam or hack\n- Original digital communication\n- Bank statements showing fraudulent transactions",
				RiskScore:            7,
			},
		},
		{
			Keywords: []string{"property", "land", "buying", "selling", "deed", "fake", "encroachment", "boundary"},
			Answer: models.LegalAnalysis{
				Category:             "Real Estate & Property Law",
				ApplicableSections:   "Transfer of Property Act, Registration Act.",
				PenaltiesFinesTenure: "Fraudulent property sales or forged deeds can result in lengthy criminal prosecution for fraud and forgery.",
				Advice:               "Do not hand over any preliminary cash without a registered agreement to sell. Before buying any property, hire an independent advocate to conduct a 'Title Search' going back at least 30 years to ensure the land is free of disputes or bank liens.",
				RequiredDocuments:    "- Sale deed or Agreement to Sell\n- Encumbrance Certificate\n- Property tax receipts\n- Approved building plan",
				RiskScore:            6,
			},
		},
	}
}

// generalTopic returns the fallback topic. Its keyword set is empty: it can
// never be selected by matching, only by default.
func generalTopic() models.LegalTopic {
	return models.LegalTopic{
		Keywords: nil,
		Answer: models.LegalAnalysis{
			Category:             "General Legal Inquiry",
			ApplicableSections:   "Varies depending on exact national and local jurisdictions.",
			PenaltiesFinesTenure: "Specific penalties can only be determined through detailed consultation.",
			Advice:               "Due to high network traffic, our AI triage systems are relying on our offline legal manual. Your query did not match our specific offline database keywords. However, we strongly recommend documenting everything in writing, gathering any contracts or evidence, and avoiding direct unmediated contact with the opposing party. If this is an emergency, contact local law enforcement immediately.",
			RequiredDocuments:    "- Any relevant written contracts or agreements\n- Photographic or digital evidence (emails, texts)\n- Identification and timeline of events",
			RiskScore:            5,
		},
	}
}
