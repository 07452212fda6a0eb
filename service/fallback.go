package service

import "legalaid-backend/models"

// fallbackEverydayLaws returns the canned collection served when the
// everyday-laws generation path is exhausted.
func fallbackEverydayLaws() []models.EverydayLaw {
	return []models.EverydayLaw{
		{
			Symbol:      "📱",
			Rule:        "Recording Conversations Without Consent",
			Description: "In many jurisdictions, it is definitively illegal to record a phone call or private conversation without the consent of all parties involved (Two-Party Consent).",
			Fine:        "Varies from civil fines to severe felony criminal charges depending on the jurisdiction.",
		},
		{
			Symbol:      "📡",
			Rule:        "Using Another's Unsecured Wi-Fi (Piggybacking)",
			Description: "Connecting to a neighbor's or business's unsecured Wi-Fi network without explicit permission is often classified as unauthorized access to a computer network.",
			Fine:        "Can be punished as a misdemeanor computer crime, carrying potential fines or minor jail time.",
		},
		{
			Symbol:      "🎵",
			Rule:        "Copyright Infringement on Social Media",
			Description: "Using copyrighted music or images in business social media posts or unauthorized videos without securing a license.",
			Fine:        "Civil lawsuits and account takedowns; statutory damages can reach severe monetary limits if taken to court.",
		},
		{
			Symbol:      "🐕",
			Rule:        "Leash Laws & Pet Waste Violations",
			Description: "Walking a dog off-leash in restricted areas or failing to clean up after them in public parks or on sidewalks.",
			Fine:        "Typically enforced by local animal control; citations often range from $25 to $250.",
		},
		{
			Symbol:      "🗑️",
			Rule:        "Improper Electronic or Chemical Disposal",
			Description: "Throwing away batteries, paint, or old electronics in the regular trash violates local environmental dumping ordinances.",
			Fine:        "Local municipal fines or citations from waste management.",
		},
	}
}

// fallbackLegalUpdates returns the canned collection served when the
// legal-updates generation path is exhausted.
func fallbackLegalUpdates() []models.LegalUpdate {
	return []models.LegalUpdate{
		{
			Title:       "Digital Personal Data Protection Act Implementation",
			Date:        "2023-2024",
			Summary:     "Comprehensive framework for processing digital personal data, establishing rights and duties. It introduces heavy penalties for data breaches by corporations.",
			ImpactLevel: "High",
		},
		{
			Title:       "New Criminal Laws Act Overhaul",
			Date:        "2024",
			Summary:     "The replacement of colonial-era penal codes with the Bharatiya Nyaya Sanhita, modernizing judicial procedures and definitions of offenses.",
			ImpactLevel: "High",
		},
		{
			Title:       "Telecommunications Act Regulation Changes",
			Date:        "2023",
			Summary:     "Restructured the regulatory framework for telecommunications networks, emphasizing national security and user protection concerning SIM cards.",
			ImpactLevel: "Medium",
		},
		{
			Title:       "Consumer Protection Rules Updates",
			Date:        "2023",
			Summary:     "Stricter regulations on dark patterns, flash sales, and misleading ads on digital storefronts to protect online buyers and penalize bad actors.",
			ImpactLevel: "Medium",
		},
	}
}
