// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fixtures

// Literal body text for the generated documents. The fixtures are fixed
// documents, not templates; nothing here is parameterized.

const leaseTitle = "AIRCRAFT OPERATING LEASE AGREEMENT"

const leaseParties = `This Aircraft Operating Lease Agreement (the "Agreement") is entered into as of March 15, 2021 (the "Effective Date")

Between:

AerCap Ireland Capital DAC
a company incorporated in Ireland
(hereinafter referred to as the "Lessor")

And:

Emirates Airlines
a company incorporated in the United Arab Emirates
(hereinafter referred to as the "Lessee")

AIRCRAFT DETAILS:
Manufacturer Serial Number (MSN): 4521
Aircraft Type: Boeing B777-300ER
Registration: A6-EGO
Engines: 2x GE90-115B

RECITALS:

WHEREAS, the Lessor is the owner of the Aircraft described herein; and

WHEREAS, the Lessee desires to lease the Aircraft from the Lessor on the terms and conditions set forth in this Agreement;

NOW, THEREFORE, in consideration of the mutual covenants and agreements contained herein, the parties agree as follows:`

const leaseArticle1Title = "ARTICLE 1 - DEFINITIONS AND KEY TERMS"

const leaseKeyTerms = `1.1 Definitions

"Aircraft" means the Boeing B777-300ER aircraft bearing Manufacturer Serial Number (MSN) 4521, together with the Engines.

"Delivery Date" means March 15, 2021.

"Lease Term" means the period of twelve (12) years commencing on the Delivery Date and expiring on March 14, 2033.

"Monthly Rent" means USD $385,000 (Three Hundred Eighty-Five Thousand United States Dollars) per calendar month.

"Security Deposit" means USD $1,155,000 (equivalent to three months' rent).

1.2 Maintenance Reserves

The Lessee shall pay the following maintenance reserve contributions:

  (a) Engine Reserves: USD $350 per Flight Hour ($/FH)
  (b) Airframe Reserves: USD $180 per Flight Hour ($/FH)
  (c) APU Reserves: USD $95 per Flight Hour ($/FH)
  (d) Landing Gear Reserves: USD $45 per Cycle ($/CY)

Total maintenance reserve rate: USD $670 per Flight Hour plus USD $45 per Cycle.

1.3 Delivery Conditions

The Aircraft shall be delivered at Dubai International Airport (DXB) in the condition specified in the Delivery Conditions Protocol attached as Schedule 2.`

const leaseArticle2Title = "ARTICLE 2 - RETURN CONDITIONS"

const leaseReturnConditions = `2.1 Return of Aircraft

Upon expiration or earlier termination of this Agreement, the Lessee shall return the Aircraft to the Lessor at a location designated by the Lessor in the following condition:

  (a) The Aircraft shall be in a condition for immediate return to service with a reputable airline.

  (b) All life-limited parts shall have no less than 50% of their certified life remaining.

  (c) The most recent C-Check shall have been performed within the preceding 24 months.

  (d) Both engines shall have no less than 3,000 Flight Hours remaining until the next shop visit.

  (e) The APU shall have no less than 2,000 hours remaining until next scheduled overhaul.

  (f) The landing gear shall have been overhauled within the preceding 10 years.

2.2 Redelivery Location

The Aircraft shall be redelivered at a maintenance facility approved by the Lessor, at the Lessee's expense.

2.3 Redelivery Inspection

The Lessor shall have the right to inspect the Aircraft and all records for a period of 60 days prior to the scheduled return date.

IN WITNESS WHEREOF, the parties have executed this Agreement as of the date first written above.

For AerCap Ireland Capital DAC:
Name: John Murphy
Title: Managing Director

For Emirates Airlines:
Name: Ahmed Al Maktoum
Title: VP Fleet Management`

const amendmentTitle = "AMENDMENT NO. 1"

const amendmentSubtitle = "TO AIRCRAFT OPERATING LEASE AGREEMENT"

const amendmentBody = `This Amendment No. 1 (the "Amendment") dated September 1, 2024, is made to the Aircraft Operating Lease Agreement dated March 15, 2021 (the "Original Agreement") between AerCap Ireland Capital DAC ("Lessor") and Emirates Airlines ("Lessee") relating to the aircraft bearing MSN 4521 (Boeing B777-300ER).

WHEREAS, the parties wish to amend the maintenance reserve rates set forth in Section 1.2 of the Original Agreement;

NOW, THEREFORE, the parties agree as follows:

1. AMENDMENT TO MAINTENANCE RESERVES

Section 1.2 of the Original Agreement is hereby amended and restated in its entirety as follows:

The Lessee shall pay the following revised maintenance reserve contributions, effective from October 1, 2024:

  (a) Engine Reserves: USD $420 per Flight Hour ($/FH)
      [Increased from USD $350/FH per the Original Agreement]

  (b) Airframe Reserves: USD $210 per Flight Hour ($/FH)
      [Increased from USD $180/FH per the Original Agreement]

  (c) APU Reserves: USD $110 per Flight Hour ($/FH)
      [Increased from USD $95/FH per the Original Agreement]

  (d) Landing Gear Reserves: USD $55 per Cycle ($/CY)
      [Increased from USD $45/CY per the Original Agreement]

The revised total maintenance reserve rate is USD $740 per Flight Hour plus USD $55 per Cycle.

2. NO OTHER CHANGES

Except as specifically amended hereby, all terms and conditions of the Original Agreement remain in full force and effect.

3. EFFECTIVE DATE

This Amendment shall be effective as of October 1, 2024.

IN WITNESS WHEREOF:

For AerCap Ireland Capital DAC:
Name: John Murphy, Managing Director
Date: September 1, 2024

For Emirates Airlines:
Name: Ahmed Al Maktoum, VP Fleet Management
Date: September 1, 2024`
